package dto

import (
	"time"

	"influmatch_backend/internal/models"
)

type UserListQuery struct {
	Role       models.UserRole `form:"role" binding:"omitempty,oneof=brand influencer admin"`
	IsApproved *bool           `form:"is_approved"`
	IsActive   *bool           `form:"is_active"`
	Search     string          `form:"search"`
	Page       int             `form:"page"`
	PageSize   int             `form:"page_size"`
}

type UserListResponse struct {
	Users []UserDTO `json:"users"`
	Total int64     `json:"total"`
}

// TrialStatusResponse summarizes the caller's trial gate state.
type TrialStatusResponse struct {
	Role                  models.UserRole `json:"role"`
	HasActiveSubscription bool            `json:"has_active_subscription"`
	TrialActive           bool            `json:"trial_active"`
	TrialStartTime        *time.Time      `json:"trial_start_time,omitempty"`
	TrialEndsAt           *time.Time      `json:"trial_ends_at,omitempty"`
	HoursRemaining        float64         `json:"hours_remaining"`
	HasViewedFreeProfile  bool            `json:"has_viewed_free_profile"`
	ViewedProfileID       *string         `json:"viewed_profile_id,omitempty"`
	CanViewMoreProfiles   bool            `json:"can_view_more_profiles"`
}
