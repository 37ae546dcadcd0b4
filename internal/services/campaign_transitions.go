package services

import (
	"fmt"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
)

type CampaignAction string

const (
	CampaignActionAccept    CampaignAction = "accept"
	CampaignActionReject    CampaignAction = "reject"
	CampaignActionNegotiate CampaignAction = "negotiate"
	CampaignActionComplete  CampaignAction = "complete"
	CampaignActionCancel    CampaignAction = "cancel"
)

// CampaignEvent describes the notification a successful transition owes.
// Transitions only describe the event; the service dispatches it after the
// row is committed.
type CampaignEvent struct {
	RecipientID string
	Type        string
	Title       string
	Message     string
}

type transitionRule struct {
	from []models.CampaignStatus
	to   models.CampaignStatus
}

var campaignTransitions = map[CampaignAction]transitionRule{
	CampaignActionAccept: {
		from: []models.CampaignStatus{models.CampaignStatusPending, models.CampaignStatusNegotiation},
		to:   models.CampaignStatusActive,
	},
	CampaignActionReject: {
		from: []models.CampaignStatus{models.CampaignStatusPending, models.CampaignStatusNegotiation},
		to:   models.CampaignStatusRejected,
	},
	CampaignActionNegotiate: {
		from: []models.CampaignStatus{models.CampaignStatusPending},
		to:   models.CampaignStatusNegotiation,
	},
	CampaignActionComplete: {
		from: []models.CampaignStatus{models.CampaignStatusActive},
		to:   models.CampaignStatusCompleted,
	},
	CampaignActionCancel: {
		from: []models.CampaignStatus{models.CampaignStatusPending, models.CampaignStatusNegotiation},
		to:   models.CampaignStatusCancelled,
	},
}

// applyCampaignAction authorizes the actor, checks the source state and moves
// the campaign to its new status. On error the campaign is untouched. mutate
// sets action-specific fields (the counter budget) once the transition is
// validated, so the event can reference them; note is the actor's optional
// free-text message, appended to the notification. The returned event names
// the other party as recipient.
func applyCampaignAction(campaign *models.Campaign, action CampaignAction, actor *models.User, note string, mutate func(*models.Campaign)) (*CampaignEvent, error) {
	if err := authorizeCampaignAction(campaign, action, actor); err != nil {
		return nil, err
	}

	rule, ok := campaignTransitions[action]
	if !ok {
		return nil, appErrors.NewBadRequestError(fmt.Sprintf("unknown campaign action %q", action))
	}

	if !statusIn(campaign.Status, rule.from) {
		return nil, appErrors.InvalidTransition(
			fmt.Sprintf("cannot %s a campaign in status %q", action, campaign.Status))
	}

	campaign.Status = rule.to
	if mutate != nil {
		mutate(campaign)
	}
	return campaignEventFor(campaign, action, note), nil
}

func authorizeCampaignAction(campaign *models.Campaign, action CampaignAction, actor *models.User) error {
	switch action {
	case CampaignActionAccept, CampaignActionReject, CampaignActionNegotiate:
		// Only the influencer the proposal targets may answer it.
		if actor.ID != campaign.InfluencerID {
			return appErrors.ErrInsufficientPermissions
		}
	case CampaignActionComplete:
		if actor.ID != campaign.BrandID && actor.Role != models.UserRoleAdmin {
			return appErrors.ErrInsufficientPermissions
		}
	case CampaignActionCancel:
		if actor.ID != campaign.BrandID {
			return appErrors.ErrInsufficientPermissions
		}
	default:
		return appErrors.NewBadRequestError(fmt.Sprintf("unknown campaign action %q", action))
	}
	return nil
}

func campaignEventFor(campaign *models.Campaign, action CampaignAction, note string) *CampaignEvent {
	switch action {
	case CampaignActionAccept:
		return &CampaignEvent{
			RecipientID: campaign.BrandID,
			Type:        repositories.NotificationTypeCampaignAccepted,
			Title:       "Campaign accepted",
			Message:     fmt.Sprintf("Your campaign '%s' was accepted", campaign.Title),
		}
	case CampaignActionReject:
		msg := fmt.Sprintf("Your campaign '%s' was rejected", campaign.Title)
		if note != "" {
			msg += fmt.Sprintf(". Reason: %s", note)
		}
		return &CampaignEvent{
			RecipientID: campaign.BrandID,
			Type:        repositories.NotificationTypeCampaignRejected,
			Title:       "Campaign rejected",
			Message:     msg,
		}
	case CampaignActionNegotiate:
		msg := fmt.Sprintf("The influencer proposed a new budget of $%s for '%s'",
			campaign.AgreedBudget().StringFixed(2), campaign.Title)
		if note != "" {
			msg += fmt.Sprintf(". Message: %s", note)
		}
		return &CampaignEvent{
			RecipientID: campaign.BrandID,
			Type:        repositories.NotificationTypeCampaignNegotiate,
			Title:       "Counter-offer received",
			Message:     msg,
		}
	case CampaignActionComplete:
		return &CampaignEvent{
			RecipientID: campaign.InfluencerID,
			Type:        repositories.NotificationTypeCampaignCompleted,
			Title:       "Campaign completed",
			Message:     fmt.Sprintf("Campaign '%s' was marked as completed", campaign.Title),
		}
	case CampaignActionCancel:
		return &CampaignEvent{
			RecipientID: campaign.InfluencerID,
			Type:        repositories.NotificationTypeCampaignCancelled,
			Title:       "Campaign cancelled",
			Message:     fmt.Sprintf("Campaign '%s' was cancelled by the brand", campaign.Title),
		}
	}
	return nil
}

func statusIn(status models.CampaignStatus, set []models.CampaignStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
