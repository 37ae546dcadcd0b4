package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FullName     string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	IsActive     bool     `gorm:"default:true"`
	IsApproved   bool     `gorm:"default:false"`

	// Trial state for brand accounts. TrialStartTime is set at registration
	// and only backfilled through the trial-status endpoint for legacy rows.
	// TrialProfileViewedID holds the single free profile slot; it is written
	// once via a compare-and-set and never cleared.
	HasActiveSubscription bool `gorm:"default:false"`
	TrialStartTime        *time.Time
	TrialProfileViewedID  *string `gorm:"type:uuid"`

	// Relations
	InfluencerProfile *InfluencerProfile `gorm:"foreignKey:UserID"`
}
