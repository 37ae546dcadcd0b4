package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one escrow ledger entry per funded campaign. Amount is split
// exactly: PlatformCommission + InfluencerPayout == Amount, computed once at
// creation and never recomputed.
type Payment struct {
	BaseModel
	CampaignID   string `gorm:"type:uuid;not null;index"`
	BrandID      string `gorm:"type:uuid;not null;index"`
	InfluencerID string `gorm:"type:uuid;not null;index"`

	Amount             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlatformCommission decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	InfluencerPayout   decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	ProviderPaymentID string `gorm:"index"`
	ProviderChargeID  string

	Status      PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	CompletedAt *time.Time
}
