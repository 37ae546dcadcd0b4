package services

import (
	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

// UserService covers the admin-facing account operations.
type UserService interface {
	ListUsers(adminID string, query dto.UserListQuery) (*dto.UserListResponse, error)
	ApproveUser(adminID, userID string) (*models.User, error)
	DeactivateUser(adminID, userID string) error
}

type userService struct {
	userRepo        repositories.UserRepository
	notificationSvc NotificationService
}

func NewUserService(userRepo repositories.UserRepository, notificationSvc NotificationService) UserService {
	return &userService{userRepo: userRepo, notificationSvc: notificationSvc}
}

func (s *userService) ListUsers(adminID string, query dto.UserListQuery) (*dto.UserListResponse, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:       query.Role,
		IsApproved: query.IsApproved,
		IsActive:   query.IsActive,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{Total: total, Users: make([]dto.UserDTO, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserDTO(&users[i]))
	}
	return resp, nil
}

func (s *userService) ApproveUser(adminID, userID string) (*models.User, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}

	if err := s.userRepo.Approve(userID); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	logger.Info("user approved", "user_id", userID, "admin_id", adminID)

	go func() {
		err := s.notificationSvc.Notify(userID,
			repositories.NotificationTypeAccountApproved,
			"Account approved",
			"Your account has been approved. You can now log in.",
			"", "")
		if err != nil {
			logger.Error("failed to create approval notification", "user_id", userID, "error", err)
		}
	}()

	return user, nil
}

func (s *userService) DeactivateUser(adminID, userID string) error {
	if err := s.requireAdmin(adminID); err != nil {
		return err
	}
	if adminID == userID {
		return appErrors.NewBadRequestError("Cannot deactivate your own account")
	}

	if err := s.userRepo.Deactivate(userID); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return err
	}

	logger.Info("user deactivated", "user_id", userID, "admin_id", adminID)
	return nil
}

func (s *userService) requireAdmin(adminID string) error {
	admin, err := s.userRepo.FindByID(adminID)
	if err != nil {
		return appErrors.ErrUserNotFound
	}
	if admin.Role != models.UserRoleAdmin {
		return appErrors.ErrInsufficientPermissions
	}
	return nil
}
