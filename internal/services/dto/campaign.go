package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCampaignRequest struct {
	InfluencerID   string          `json:"influencer_id" binding:"required,uuid"`
	Title          string          `json:"title" binding:"required,max=200"`
	Description    string          `json:"description"`
	Briefing       string          `json:"briefing"`
	Deliverables   string          `json:"deliverables"`
	ProposedBudget decimal.Decimal `json:"proposed_budget" binding:"required"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
}

// NegotiateCampaignRequest carries the influencer's counter-offer. The
// message, when present, is relayed to the brand with the notification.
type NegotiateCampaignRequest struct {
	CounterBudget decimal.Decimal `json:"counter_budget" binding:"required"`
	Message       string          `json:"message"`
}

// RejectCampaignRequest is the optional rejection body; the reason, when
// present, is relayed to the brand with the notification.
type RejectCampaignRequest struct {
	Reason string `json:"reason"`
}

type CampaignListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
