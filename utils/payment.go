package utils

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProcessor creates payment intents for card checkouts. The
// client secret it returns is confirmed client-side; nothing here
// polls or retries.
type StripeProcessor struct{}

func NewStripeProcessor(apiKey string) (*StripeProcessor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe api key is not set")
	}
	stripe.Key = apiKey
	return &StripeProcessor{}, nil
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %v", err)
	}
	return pi.ClientSecret, nil
}
