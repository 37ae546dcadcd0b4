package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is a proposal from a brand to a single influencer. Status moves
// through the transition table in services/campaign_transitions.go; nothing
// else writes Status.
type Campaign struct {
	BaseModel
	BrandID      string `gorm:"type:uuid;not null;index"`
	InfluencerID string `gorm:"type:uuid;not null;index"`

	Title        string `gorm:"not null"`
	Description  string
	Briefing     string
	Deliverables string

	ProposedBudget decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	FinalBudget    *decimal.Decimal `gorm:"type:numeric(12,2)"`

	Status CampaignStatus `gorm:"type:varchar(20);not null;default:'pending';index"`

	StartDate *time.Time
	EndDate   *time.Time
}

// AgreedBudget returns the budget the parties last settled on: the
// negotiated counter-offer when one exists, the original proposal otherwise.
func (c *Campaign) AgreedBudget() decimal.Decimal {
	if c.FinalBudget != nil {
		return *c.FinalBudget
	}
	return c.ProposedBudget
}
