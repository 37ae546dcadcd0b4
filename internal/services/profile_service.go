package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

type ProfileService interface {
	CreateProfile(userID string, req *dto.CreateProfileRequest) (*models.InfluencerProfile, error)
	UpdateMyProfile(userID string, req *dto.UpdateProfileRequest) (*models.InfluencerProfile, error)
	GetMyProfile(userID string) (*models.InfluencerProfile, error)
	ListProfiles(query dto.ProfileListQuery) ([]models.InfluencerProfile, error)
	GetProfileByUserID(userID string) (*models.InfluencerProfile, error)

	// GetProfile is the trial-gated detail view. The gate is evaluated
	// before existence so a blocked brand cannot probe which IDs exist.
	GetProfile(viewerID, profileID string) (*models.InfluencerProfile, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	trialSvc    TrialService
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	trialSvc TrialService,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		trialSvc:    trialSvc,
	}
}

func (s *profileService) CreateProfile(userID string, req *dto.CreateProfileRequest) (*models.InfluencerProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleInfluencer {
		return nil, appErrors.ErrInsufficientPermissions
	}

	profile := &models.InfluencerProfile{
		UserID:                user.ID,
		Bio:                   req.Bio,
		InstagramHandle:       req.InstagramHandle,
		InstagramFollowers:    req.InstagramFollowers,
		TiktokHandle:          req.TiktokHandle,
		TiktokFollowers:       req.TiktokFollowers,
		YoutubeHandle:         req.YoutubeHandle,
		YoutubeSubscribers:    req.YoutubeSubscribers,
		AverageEngagementRate: req.AverageEngagementRate,
	}
	if req.SuggestedRatePerPost != nil {
		profile.SuggestedRatePerPost = *req.SuggestedRatePerPost
	}
	if req.SuggestedRatePerStory != nil {
		profile.SuggestedRatePerStory = *req.SuggestedRatePerStory
	}
	if req.SuggestedRatePerVideo != nil {
		profile.SuggestedRatePerVideo = *req.SuggestedRatePerVideo
	}
	if categories, err := json.Marshal(req.Categories); err == nil {
		profile.Categories = datatypes.JSON(categories)
	}

	if err := s.profileRepo.Create(profile); err != nil {
		if appErrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, appErrors.ErrProfileAlreadyExists
		}
		return nil, err
	}

	logger.Info("influencer profile created", "user_id", user.ID, "profile_id", profile.ID)
	return profile, nil
}

func (s *profileService) UpdateMyProfile(userID string, req *dto.UpdateProfileRequest) (*models.InfluencerProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleInfluencer {
		return nil, appErrors.ErrInsufficientPermissions
	}

	profile, err := s.profileRepo.FindByUserID(user.ID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.InstagramHandle != nil {
		profile.InstagramHandle = *req.InstagramHandle
	}
	if req.InstagramFollowers != nil {
		profile.InstagramFollowers = *req.InstagramFollowers
	}
	if req.TiktokHandle != nil {
		profile.TiktokHandle = *req.TiktokHandle
	}
	if req.TiktokFollowers != nil {
		profile.TiktokFollowers = *req.TiktokFollowers
	}
	if req.YoutubeHandle != nil {
		profile.YoutubeHandle = *req.YoutubeHandle
	}
	if req.YoutubeSubscribers != nil {
		profile.YoutubeSubscribers = *req.YoutubeSubscribers
	}
	if req.AverageEngagementRate != nil {
		profile.AverageEngagementRate = *req.AverageEngagementRate
	}
	if req.SuggestedRatePerPost != nil {
		profile.SuggestedRatePerPost = *req.SuggestedRatePerPost
	}
	if req.SuggestedRatePerStory != nil {
		profile.SuggestedRatePerStory = *req.SuggestedRatePerStory
	}
	if req.SuggestedRatePerVideo != nil {
		profile.SuggestedRatePerVideo = *req.SuggestedRatePerVideo
	}
	if req.Categories != nil {
		if categories, err := json.Marshal(req.Categories); err == nil {
			profile.Categories = datatypes.JSON(categories)
		}
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetMyProfile(userID string) (*models.InfluencerProfile, error) {
	return s.GetProfileByUserID(userID)
}

func (s *profileService) ListProfiles(query dto.ProfileListQuery) ([]models.InfluencerProfile, error) {
	limit := query.PageSize
	page := query.Page
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 100
	}
	// Browsing the list stays open during the trial; only the detail view
	// is gated.
	return s.profileRepo.FindAll(limit, (page-1)*limit)
}

func (s *profileService) GetProfileByUserID(userID string) (*models.InfluencerProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetProfile(viewerID, profileID string) (*models.InfluencerProfile, error) {
	viewer, err := s.userRepo.FindByID(viewerID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	decision := s.trialSvc.CanViewProfile(viewer, profileID)
	if !decision.Allowed {
		switch decision.Reason {
		case ReasonTrialExpired:
			return nil, appErrors.ErrTrialExpired
		case ReasonFreeProfileLimitReached:
			return nil, appErrors.ErrFreeProfileLimitReached
		default:
			return nil, appErrors.ErrForbidden
		}
	}

	if err := s.trialSvc.RecordProfileView(viewer, profileID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
