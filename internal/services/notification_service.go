package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

type NotificationService interface {
	// Notify persists an in-app notification. Callers fire it after the
	// state change that owes it has committed.
	Notify(userID, ntype, title, message, relatedType, relatedID string) error

	GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(userID, ntype, title, message, relatedType, relatedID string) error {
	notification := &models.Notification{
		UserID:            userID,
		Type:              ntype,
		Title:             title,
		Message:           message,
		RelatedEntityType: relatedType,
		RelatedEntityID:   relatedID,
	}

	if relatedType != "" && relatedID != "" {
		payload, err := json.Marshal(map[string]string{relatedType + "_id": relatedID})
		if err == nil {
			notification.Data = datatypes.JSON(payload)
		}
	}

	return s.notificationRepo.CreateNotification(notification)
}

func (s *notificationService) GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, criteria)
	if err != nil {
		return nil, err
	}

	resp := &dto.NotificationListResponse{
		Total:         total,
		Notifications: make([]dto.NotificationDTO, 0, len(notifications)),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, dto.NotificationDTO{
			ID:                n.ID,
			Type:              n.Type,
			Title:             n.Title,
			Message:           n.Message,
			RelatedEntityType: n.RelatedEntityType,
			RelatedEntityID:   n.RelatedEntityID,
			IsRead:            n.IsRead,
			ReadAt:            n.ReadAt,
			CreatedAt:         n.CreatedAt,
		})
	}
	return resp, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(notificationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrNotificationNotFound) {
			return appErrors.ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != userID {
		return appErrors.ErrInsufficientPermissions
	}
	return s.notificationRepo.MarkAsRead(notificationID)
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(userID)
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	return s.notificationRepo.GetUnreadCount(userID)
}
