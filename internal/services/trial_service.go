package services

import (
	"time"

	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

// Trial gate decision reasons.
const (
	ReasonTrialExpired            = "TRIAL_EXPIRED"
	ReasonFreeProfileLimitReached = "FREE_PROFILE_LIMIT_REACHED"
)

// TrialDecision is the outcome of evaluating the trial gate for one profile
// view. Reason is set only when Allowed is false.
type TrialDecision struct {
	Allowed bool
	Reason  string
}

// TrialConfig is injected at wiring time; services never read global config.
type TrialConfig struct {
	Duration time.Duration
}

type TrialService interface {
	// CanViewProfile evaluates the gate rules in order and never mutates
	// state. An unset trial start counts as expired here; only
	// GetTrialStatus backfills it.
	CanViewProfile(user *models.User, profileID string) TrialDecision

	// RecordProfileView claims the free profile slot for a trial brand.
	// Repeat views of the recorded profile are a no-op, and the claim
	// itself is a compare-and-set, so concurrent first views agree on one
	// winner.
	RecordProfileView(user *models.User, profileID string) error

	GetTrialStatus(userID string) (*dto.TrialStatusResponse, error)
}

type trialService struct {
	userRepo repositories.UserRepository
	cfg      TrialConfig
}

func NewTrialService(userRepo repositories.UserRepository, cfg TrialConfig) TrialService {
	if cfg.Duration <= 0 {
		cfg.Duration = 24 * time.Hour
	}
	return &trialService{userRepo: userRepo, cfg: cfg}
}

func (s *trialService) CanViewProfile(user *models.User, profileID string) TrialDecision {
	// The gate applies to brands only.
	if user.Role != models.UserRoleBrand {
		return TrialDecision{Allowed: true}
	}

	// A paid subscription bypasses the trial entirely.
	if user.HasActiveSubscription {
		return TrialDecision{Allowed: true}
	}

	if user.TrialStartTime == nil || s.expired(*user.TrialStartTime) {
		return TrialDecision{Allowed: false, Reason: ReasonTrialExpired}
	}

	// In-window: the single free slot is still open, or this is the
	// profile it was spent on.
	if user.TrialProfileViewedID == nil {
		return TrialDecision{Allowed: true}
	}
	if *user.TrialProfileViewedID == profileID {
		return TrialDecision{Allowed: true}
	}

	return TrialDecision{Allowed: false, Reason: ReasonFreeProfileLimitReached}
}

func (s *trialService) RecordProfileView(user *models.User, profileID string) error {
	if user.Role != models.UserRoleBrand || user.HasActiveSubscription {
		return nil
	}
	if user.TrialProfileViewedID != nil {
		return nil
	}

	claimed, err := s.userRepo.ClaimTrialProfileView(user.ID, profileID)
	if err != nil {
		return err
	}
	if claimed {
		user.TrialProfileViewedID = &profileID
		logger.Info("trial profile slot claimed", "user_id", user.ID, "profile_id", profileID)
	}
	return nil
}

func (s *trialService) GetTrialStatus(userID string) (*dto.TrialStatusResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	status := &dto.TrialStatusResponse{
		Role:                  user.Role,
		HasActiveSubscription: user.HasActiveSubscription,
		HasViewedFreeProfile:  user.TrialProfileViewedID != nil,
		ViewedProfileID:       user.TrialProfileViewedID,
		TrialStartTime:        user.TrialStartTime,
	}

	if user.Role != models.UserRoleBrand {
		return status, nil
	}

	// Backfill for brand rows created before trials were stamped at
	// registration. This is the only place an unset start gets a value.
	if user.TrialStartTime == nil && !user.HasActiveSubscription {
		start, err := s.userRepo.InitTrialStart(user.ID, time.Now())
		if err != nil {
			return nil, err
		}
		status.TrialStartTime = start
	}

	if status.TrialStartTime != nil {
		endsAt := status.TrialStartTime.Add(s.cfg.Duration)
		status.TrialEndsAt = &endsAt
		status.TrialActive = !s.expired(*status.TrialStartTime)
		if remaining := time.Until(endsAt).Hours(); remaining > 0 {
			status.HoursRemaining = remaining
		}
	}
	status.CanViewMoreProfiles = status.TrialActive && !status.HasViewedFreeProfile

	return status, nil
}

func (s *trialService) expired(start time.Time) bool {
	return time.Since(start) > s.cfg.Duration
}
