package models

import (
	"gorm.io/datatypes"
	"time"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index"`
	Type    string `gorm:"not null"` // "campaign_created", "campaign_accepted", "payment_released"
	Title   string `gorm:"not null"`
	Message string

	RelatedEntityType string // "campaign", "payment"
	RelatedEntityID   string `gorm:"type:uuid"`

	Data   datatypes.JSON `gorm:"type:jsonb"` // {"campaign_id": "...", "amount": "..."}
	IsRead bool           `gorm:"default:false"`
	ReadAt *time.Time
}
