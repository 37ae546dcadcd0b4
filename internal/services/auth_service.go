package services

import (
	"time"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/auth"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

type AuthService interface {
	// Register creates an account. Brands get their trial stamped and are
	// auto-approved; influencers wait for admin approval.
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(userID string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	// Admin accounts are seeded at startup, never self-registered.
	if req.Role != models.UserRoleBrand && req.Role != models.UserRoleInfluencer {
		return nil, appErrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
	}

	switch req.Role {
	case models.UserRoleBrand:
		now := time.Now()
		user.TrialStartTime = &now
		user.IsApproved = true
	case models.UserRoleInfluencer:
		user.IsApproved = false
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID, "role", string(user.Role))
	return user, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, appErrors.ErrUserInactive
	}
	if !user.IsApproved {
		return nil, appErrors.ErrUserNotApproved
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserDTO(user),
	}, nil
}

func (s *authService) GetCurrentUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, appErrors.ErrUserInactive
	}
	return user, nil
}
