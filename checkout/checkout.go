// Package checkout recomputes order totals server-side and branches per
// payment method. Client-supplied totals are never trusted.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velora-labs/velora-backend-go/models"
)

const (
	// Orders above this subtotal ship free; everything else pays the flat fee.
	FreeShippingThreshold = 200.0
	FlatShippingFee       = 25.0
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnsupportedMethod = errors.New("unsupported payment method")
)

// IntentCreator requests a payment-intent token from the payment
// provider. Amount is in minor currency units.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

type Item struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Request struct {
	Cart          []Item               `json:"cart"`
	Address       models.Address       `json:"address"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

type Result struct {
	OrderID      string
	ClientSecret string
	Status       models.OrderStatus
	Subtotal     float64
	Shipping     float64
	Total        float64
}

// Totals recomputes subtotal, shipping and total from the line items.
func Totals(items []Item) (subtotal, shipping, total float64) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = round2(subtotal)
	if subtotal <= FreeShippingThreshold {
		shipping = FlatShippingFee
	}
	return subtotal, shipping, round2(subtotal + shipping)
}

type Orchestrator struct {
	intents  IntentCreator
	currency string
}

func NewOrchestrator(intents IntentCreator, currency string) *Orchestrator {
	if currency == "" {
		currency = "usd"
	}
	return &Orchestrator{intents: intents, currency: currency}
}

// Process validates the cart, recomputes totals and branches on the
// payment method. cod/bank settle offline: the order id is synthesized
// and the order is Pending immediately. card asks the provider for a
// payment intent and stays Processing until client-side confirmation.
// apple is accepted at the API surface but has no server branch yet.
// Failures are generic; nothing here retries.
func (o *Orchestrator) Process(ctx context.Context, req Request) (Result, error) {
	if len(req.Cart) == 0 {
		return Result{}, ErrEmptyCart
	}

	subtotal, shipping, total := Totals(req.Cart)
	res := Result{Subtotal: subtotal, Shipping: shipping, Total: total}

	switch req.PaymentMethod {
	case models.PaymentMethodCOD, models.PaymentMethodBank:
		res.OrderID = newOrderID()
		res.Status = models.OrderStatusPending
		return res, nil

	case models.PaymentMethodCard:
		if o.intents == nil {
			return Result{}, errors.New("payment provider is not configured")
		}
		secret, err := o.intents.CreateIntent(ctx, int64(math.Round(total*100)), o.currency)
		if err != nil {
			return Result{}, fmt.Errorf("payment intent: %w", err)
		}
		res.OrderID = newOrderID()
		res.ClientSecret = secret
		res.Status = models.OrderStatusProcessing
		return res, nil

	default:
		// Includes "apple": the UI offers it but no server branch exists.
		return Result{}, ErrUnsupportedMethod
	}
}

func newOrderID() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return fmt.Sprintf("ORD-%d-%s", time.Now().Year(), short)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
