package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeProvider struct {
	sc       *client.API
	currency string
}

func NewStripeProvider(secretKey, currency string) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripeProvider{sc: sc, currency: currency}
}

func (p *StripeProvider) Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = p.currency
	}

	// Stripe wants the smallest currency unit.
	cents := req.Amount.Mul(decimalHundred).Round(0).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(cents),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(req.PaymentMethodRef),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("campaign_id", req.CampaignID)
	params.AddMetadata("brand_id", req.BrandID)

	pi, err := p.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("stripe payment intent %s in status %s", pi.ID, pi.Status)
	}

	result := &CaptureResult{PaymentIntentID: pi.ID}
	if pi.LatestCharge != nil {
		result.ChargeID = pi.LatestCharge.ID
	}
	return result, nil
}
