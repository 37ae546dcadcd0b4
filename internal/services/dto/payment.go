package dto

import "github.com/shopspring/decimal"

type CreatePaymentRequest struct {
	CampaignID       string          `json:"campaign_id" binding:"required,uuid"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethodRef string          `json:"payment_method_ref" binding:"required"`
	Currency         string          `json:"currency" binding:"omitempty,len=3"`
}
