package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// MockProvider stands in for Stripe in development when no secret key is
// configured. Every capture succeeds with synthetic references.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &CaptureResult{
		PaymentIntentID: "pi_mock_" + uuid.New().String(),
		ChargeID:        "ch_mock_" + uuid.New().String(),
	}, nil
}
