package repositories

import (
	"errors"
	"fmt"
	"time"

	"influmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification types
const (
	NotificationTypeCampaignCreated   = "campaign_created"
	NotificationTypeCampaignAccepted  = "campaign_accepted"
	NotificationTypeCampaignRejected  = "campaign_rejected"
	NotificationTypeCampaignNegotiate = "campaign_negotiation"
	NotificationTypeCampaignCompleted = "campaign_completed"
	NotificationTypeCampaignCancelled = "campaign_cancelled"
	NotificationTypePaymentHeld       = "payment_held"
	NotificationTypePaymentReleased   = "payment_released"
	NotificationTypeAccountApproved   = "account_approved"
)

type NotificationCriteria struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error)
	MarkAsRead(notificationID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	query := r.db.Where("user_id = ?", userID)

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	var total int64
	if err := query.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) validateNotification(notification *models.Notification) error {
	if notification.UserID == "" {
		return errors.New("user ID is required")
	}
	if notification.Type == "" {
		return errors.New("notification type is required")
	}
	if notification.Title == "" {
		return errors.New("notification title is required")
	}

	validTypes := map[string]bool{
		NotificationTypeCampaignCreated:   true,
		NotificationTypeCampaignAccepted:  true,
		NotificationTypeCampaignRejected:  true,
		NotificationTypeCampaignNegotiate: true,
		NotificationTypeCampaignCompleted: true,
		NotificationTypeCampaignCancelled: true,
		NotificationTypePaymentHeld:       true,
		NotificationTypePaymentReleased:   true,
		NotificationTypeAccountApproved:   true,
	}
	if !validTypes[notification.Type] {
		return fmt.Errorf("invalid notification type: %s", notification.Type)
	}
	return nil
}
