package dto

import (
	"time"

	"influmatch_backend/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required,oneof=brand influencer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the access token and the authenticated user.
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID                    string          `json:"id"`
	Email                 string          `json:"email"`
	FullName              string          `json:"full_name"`
	Role                  models.UserRole `json:"role"`
	IsActive              bool            `json:"is_active"`
	IsApproved            bool            `json:"is_approved"`
	HasActiveSubscription bool            `json:"has_active_subscription"`
	TrialStartTime        *time.Time      `json:"trial_start_time,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:                    user.ID,
		Email:                 user.Email,
		FullName:              user.FullName,
		Role:                  user.Role,
		IsActive:              user.IsActive,
		IsApproved:            user.IsApproved,
		HasActiveSubscription: user.HasActiveSubscription,
		TrialStartTime:        user.TrialStartTime,
		CreatedAt:             user.CreatedAt,
	}
}
