package models

type UserRole string
type CampaignStatus string
type PaymentStatus string

const (
	UserRoleBrand      UserRole = "brand"
	UserRoleInfluencer UserRole = "influencer"
	UserRoleAdmin      UserRole = "admin"

	CampaignStatusPending     CampaignStatus = "pending"
	CampaignStatusActive      CampaignStatus = "active"
	CampaignStatusNegotiation CampaignStatus = "negotiation"
	CampaignStatusRejected    CampaignStatus = "rejected"
	CampaignStatusCompleted   CampaignStatus = "completed"
	CampaignStatusCancelled   CampaignStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusHeld      PaymentStatus = "held"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidRole reports whether r is one of the three roles the platform knows.
// Role checks switch over this closed set; an unknown value is rejected at
// registration and token parsing, never defaulted.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleBrand, UserRoleInfluencer, UserRoleAdmin:
		return true
	}
	return false
}

// Terminal reports whether a campaign status admits no further transitions.
func (s CampaignStatus) Terminal() bool {
	switch s {
	case CampaignStatusRejected, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}
