// Package payments wraps the external payment provider. The escrow ledger
// treats the provider as a black box: capture either succeeds and returns
// provider references, or fails and nothing is persisted.
package payments

import (
	"context"

	"github.com/shopspring/decimal"
)

type CaptureRequest struct {
	Amount           decimal.Decimal
	Currency         string
	PaymentMethodRef string
	CampaignID       string
	BrandID          string
}

type CaptureResult struct {
	PaymentIntentID string
	ChargeID        string
}

// Provider captures funds from the brand's payment method into the platform
// account. Implementations must honor ctx cancellation.
type Provider interface {
	Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error)
}
