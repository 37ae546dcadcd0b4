package services

import (
	"fmt"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

type CampaignService interface {
	CreateCampaign(brandID string, req *dto.CreateCampaignRequest) (*models.Campaign, error)
	GetCampaign(actorID, campaignID string) (*models.Campaign, error)
	GetUserCampaigns(actorID string, query dto.CampaignListQuery) ([]models.Campaign, error)

	AcceptCampaign(actorID, campaignID string) (*models.Campaign, error)
	RejectCampaign(actorID, campaignID string, req *dto.RejectCampaignRequest) (*models.Campaign, error)
	NegotiateCampaign(actorID, campaignID string, req *dto.NegotiateCampaignRequest) (*models.Campaign, error)
	CompleteCampaign(actorID, campaignID string) (*models.Campaign, error)
	CancelCampaign(actorID, campaignID string) (*models.Campaign, error)
}

type campaignService struct {
	campaignRepo    repositories.CampaignRepository
	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	notificationSvc NotificationService
}

func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notificationSvc NotificationService,
) CampaignService {
	return &campaignService{
		campaignRepo:    campaignRepo,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *campaignService) CreateCampaign(brandID string, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	brand, err := s.userRepo.FindByID(brandID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}
	if brand.Role != models.UserRoleBrand {
		return nil, appErrors.ErrInsufficientPermissions
	}
	if !brand.HasActiveSubscription {
		return nil, appErrors.ErrSubscriptionRequired
	}

	if !req.ProposedBudget.IsPositive() {
		return nil, appErrors.ErrInvalidBudget
	}

	influencer, err := s.userRepo.FindByID(req.InfluencerID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound.WithMessage("Influencer not found")
	}
	if influencer.Role != models.UserRoleInfluencer {
		return nil, appErrors.NewBadRequestError("Target user is not an influencer")
	}
	if !influencer.IsApproved || !influencer.IsActive {
		return nil, appErrors.NewBadRequestError("Influencer is not available for campaigns")
	}

	campaign := &models.Campaign{
		BrandID:        brand.ID,
		InfluencerID:   influencer.ID,
		Title:          req.Title,
		Description:    req.Description,
		Briefing:       req.Briefing,
		Deliverables:   req.Deliverables,
		ProposedBudget: req.ProposedBudget,
		Status:         models.CampaignStatusPending,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}

	logger.Info("campaign created",
		"campaign_id", campaign.ID, "brand_id", brand.ID, "influencer_id", influencer.ID)

	s.dispatch(&CampaignEvent{
		RecipientID: influencer.ID,
		Type:        repositories.NotificationTypeCampaignCreated,
		Title:       "New campaign proposal",
		Message:     fmt.Sprintf("%s sent you a campaign proposal: '%s'", brand.FullName, campaign.Title),
	}, campaign.ID)

	return campaign, nil
}

func (s *campaignService) GetCampaign(actorID, campaignID string) (*models.Campaign, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, err
	}

	if !s.canRead(actor, campaign) {
		return nil, appErrors.ErrInsufficientPermissions
	}
	return campaign, nil
}

func (s *campaignService) GetUserCampaigns(actorID string, query dto.CampaignListQuery) ([]models.Campaign, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	limit := query.PageSize
	page := query.Page
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	switch actor.Role {
	case models.UserRoleBrand:
		return s.campaignRepo.FindByBrand(actor.ID, limit, offset)
	case models.UserRoleInfluencer:
		return s.campaignRepo.FindByInfluencer(actor.ID, limit, offset)
	default:
		return nil, appErrors.ErrInsufficientPermissions
	}
}

func (s *campaignService) AcceptCampaign(actorID, campaignID string) (*models.Campaign, error) {
	return s.transition(actorID, campaignID, CampaignActionAccept, "", nil)
}

func (s *campaignService) RejectCampaign(actorID, campaignID string, req *dto.RejectCampaignRequest) (*models.Campaign, error) {
	var reason string
	if req != nil {
		reason = req.Reason
	}
	return s.transition(actorID, campaignID, CampaignActionReject, reason, nil)
}

func (s *campaignService) NegotiateCampaign(actorID, campaignID string, req *dto.NegotiateCampaignRequest) (*models.Campaign, error) {
	if !req.CounterBudget.IsPositive() {
		return nil, appErrors.ErrInvalidBudget
	}
	return s.transition(actorID, campaignID, CampaignActionNegotiate, req.Message, func(c *models.Campaign) {
		budget := req.CounterBudget
		c.FinalBudget = &budget
	})
}

func (s *campaignService) CompleteCampaign(actorID, campaignID string) (*models.Campaign, error) {
	campaign, err := s.transition(actorID, campaignID, CampaignActionComplete, "", nil)
	if err != nil {
		return nil, err
	}

	// Completion counts toward the influencer's public track record.
	go func(influencerID string) {
		if err := s.profileRepo.IncrementCampaignsCompleted(influencerID); err != nil {
			logger.Error("failed to bump completed campaigns counter",
				"influencer_id", influencerID, "error", err)
		}
	}(campaign.InfluencerID)

	return campaign, nil
}

func (s *campaignService) CancelCampaign(actorID, campaignID string) (*models.Campaign, error) {
	return s.transition(actorID, campaignID, CampaignActionCancel, "", nil)
}

// transition runs one state machine step under the repository's row lock.
// mutate sets additional fields once the transition is validated; note is
// the actor's optional message, relayed with the notification.
func (s *campaignService) transition(actorID, campaignID string, action CampaignAction, note string, mutate func(*models.Campaign)) (*models.Campaign, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	var event *CampaignEvent
	campaign, err := s.campaignRepo.Transition(campaignID, func(c *models.Campaign) error {
		ev, err := applyCampaignAction(c, action, actor, note, mutate)
		if err != nil {
			return err
		}
		event = ev
		return nil
	})
	if err != nil {
		if appErrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, err
	}

	logger.Info("campaign transition",
		"campaign_id", campaign.ID, "action", string(action), "status", string(campaign.Status), "actor_id", actor.ID)

	s.dispatch(event, campaign.ID)
	return campaign, nil
}

func (s *campaignService) dispatch(event *CampaignEvent, campaignID string) {
	if event == nil {
		return
	}
	go func() {
		err := s.notificationSvc.Notify(event.RecipientID, event.Type, event.Title, event.Message, "campaign", campaignID)
		if err != nil {
			logger.Error("failed to create campaign notification",
				"campaign_id", campaignID, "type", event.Type, "error", err)
		}
	}()
}

func (s *campaignService) canRead(actor *models.User, campaign *models.Campaign) bool {
	return actor.ID == campaign.BrandID ||
		actor.ID == campaign.InfluencerID ||
		actor.Role == models.UserRoleAdmin
}
