package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InfluencerProfile is the public card a brand browses and, subject to the
// trial gate, views in detail. One per influencer user.
type InfluencerProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null"`
	Bio    string

	InstagramHandle    string
	InstagramFollowers int
	TiktokHandle       string
	TiktokFollowers    int
	YoutubeHandle      string
	YoutubeSubscribers int

	AverageEngagementRate float64
	SuggestedRatePerPost  decimal.Decimal `gorm:"type:numeric(12,2)"`
	SuggestedRatePerStory decimal.Decimal `gorm:"type:numeric(12,2)"`
	SuggestedRatePerVideo decimal.Decimal `gorm:"type:numeric(12,2)"`

	Categories datatypes.JSON `gorm:"type:jsonb"` // ["beauty", "tech", ...]

	TotalCampaignsCompleted int     `gorm:"default:0"`
	AverageRating           float64 `gorm:"default:0"`
}
