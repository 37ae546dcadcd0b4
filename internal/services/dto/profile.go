package dto

import "github.com/shopspring/decimal"

type CreateProfileRequest struct {
	Bio                string `json:"bio"`
	InstagramHandle    string `json:"instagram_handle"`
	InstagramFollowers int    `json:"instagram_followers" binding:"omitempty,min=0"`
	TiktokHandle       string `json:"tiktok_handle"`
	TiktokFollowers    int    `json:"tiktok_followers" binding:"omitempty,min=0"`
	YoutubeHandle      string `json:"youtube_handle"`
	YoutubeSubscribers int    `json:"youtube_subscribers" binding:"omitempty,min=0"`

	AverageEngagementRate float64          `json:"average_engagement_rate" binding:"omitempty,min=0,max=100"`
	SuggestedRatePerPost  *decimal.Decimal `json:"suggested_rate_per_post"`
	SuggestedRatePerStory *decimal.Decimal `json:"suggested_rate_per_story"`
	SuggestedRatePerVideo *decimal.Decimal `json:"suggested_rate_per_video"`

	Categories []string `json:"categories"`
}

// UpdateProfileRequest uses pointers so omitted fields stay untouched.
type UpdateProfileRequest struct {
	Bio                *string `json:"bio"`
	InstagramHandle    *string `json:"instagram_handle"`
	InstagramFollowers *int    `json:"instagram_followers" binding:"omitempty,min=0"`
	TiktokHandle       *string `json:"tiktok_handle"`
	TiktokFollowers    *int    `json:"tiktok_followers" binding:"omitempty,min=0"`
	YoutubeHandle      *string `json:"youtube_handle"`
	YoutubeSubscribers *int    `json:"youtube_subscribers" binding:"omitempty,min=0"`

	AverageEngagementRate *float64         `json:"average_engagement_rate" binding:"omitempty,min=0,max=100"`
	SuggestedRatePerPost  *decimal.Decimal `json:"suggested_rate_per_post"`
	SuggestedRatePerStory *decimal.Decimal `json:"suggested_rate_per_story"`
	SuggestedRatePerVideo *decimal.Decimal `json:"suggested_rate_per_video"`

	Categories []string `json:"categories"`
}

type ProfileListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
