package dto

import "github.com/shopspring/decimal"

type CreatePlanRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	BillingPeriod string          `json:"billing_period" binding:"omitempty,oneof=monthly yearly"`
	Features      []string        `json:"features"`
	IsFeatured    bool            `json:"is_featured"`
	IsActive      bool            `json:"is_active"`
	DisplayOrder  int             `json:"display_order"`
}

type UpdatePlanRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=100"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	BillingPeriod *string          `json:"billing_period" binding:"omitempty,oneof=monthly yearly"`
	Features      []string         `json:"features"`
	IsFeatured    *bool            `json:"is_featured"`
	IsActive      *bool            `json:"is_active"`
	DisplayOrder  *int             `json:"display_order"`
}

type ActivateSubscriptionRequest struct {
	PlanID string `json:"plan_id" binding:"required,uuid"`
}
