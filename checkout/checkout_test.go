package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/velora-labs/velora-backend-go/models"
)

type fakeIntents struct {
	amount int64
	err    error
}

func (f *fakeIntents) CreateIntent(_ context.Context, amountMinor int64, _ string) (string, error) {
	f.amount = amountMinor
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret_123", nil
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []Item
		wantSubtotal float64
		wantShipping float64
		wantTotal    float64
	}{
		{
			name:         "free shipping above threshold",
			items:        []Item{{Price: 120, Quantity: 1}, {Price: 50, Quantity: 2}},
			wantSubtotal: 220,
			wantShipping: 0,
			wantTotal:    220,
		},
		{
			name:         "flat fee below threshold",
			items:        []Item{{Price: 75, Quantity: 2}},
			wantSubtotal: 150,
			wantShipping: 25,
			wantTotal:    175,
		},
		{
			name:         "threshold itself still pays shipping",
			items:        []Item{{Price: 200, Quantity: 1}},
			wantSubtotal: 200,
			wantShipping: 25,
			wantTotal:    225,
		},
		{
			name:         "empty cart is all zeros",
			items:        nil,
			wantSubtotal: 0,
			wantShipping: 25,
			wantTotal:    25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, shipping, total := Totals(tt.items)
			if subtotal != tt.wantSubtotal {
				t.Fatalf("subtotal: got %.2f want %.2f", subtotal, tt.wantSubtotal)
			}
			if shipping != tt.wantShipping {
				t.Fatalf("shipping: got %.2f want %.2f", shipping, tt.wantShipping)
			}
			if total != tt.wantTotal {
				t.Fatalf("total: got %.2f want %.2f", total, tt.wantTotal)
			}
		})
	}
}

func TestProcessCODReturnsPendingOrder(t *testing.T) {
	o := NewOrchestrator(&fakeIntents{}, "usd")

	res, err := o.Process(context.Background(), Request{
		Cart:          []Item{{Price: 50, Quantity: 1}},
		PaymentMethod: models.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != models.OrderStatusPending {
		t.Fatalf("expected Pending, got %s", res.Status)
	}
	if !strings.HasPrefix(res.OrderID, "ORD-") {
		t.Fatalf("expected synthesized order id, got %q", res.OrderID)
	}
	if res.ClientSecret != "" {
		t.Fatal("cod must not produce a client secret")
	}
}

func TestProcessBankMatchesCOD(t *testing.T) {
	o := NewOrchestrator(&fakeIntents{}, "usd")
	res, err := o.Process(context.Background(), Request{
		Cart:          []Item{{Price: 50, Quantity: 1}},
		PaymentMethod: models.PaymentMethodBank,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != models.OrderStatusPending || res.OrderID == "" {
		t.Fatalf("bank transfer should defer settlement, got %+v", res)
	}
}

func TestProcessCardRequestsIntentInMinorUnits(t *testing.T) {
	intents := &fakeIntents{}
	o := NewOrchestrator(intents, "usd")

	res, err := o.Process(context.Background(), Request{
		Cart:          []Item{{Price: 75, Quantity: 2}}, // 150 + 25 shipping
		PaymentMethod: models.PaymentMethodCard,
	})
	if err != nil {
		t.Fatal(err)
	}
	if intents.amount != 17500 {
		t.Fatalf("expected 17500 minor units, got %d", intents.amount)
	}
	if res.ClientSecret != "pi_secret_123" {
		t.Fatalf("expected client secret passthrough, got %q", res.ClientSecret)
	}
	if res.Status != models.OrderStatusProcessing {
		t.Fatalf("card orders stay Processing, got %s", res.Status)
	}
}

func TestProcessCardProviderFailure(t *testing.T) {
	o := NewOrchestrator(&fakeIntents{err: errors.New("provider down")}, "usd")
	_, err := o.Process(context.Background(), Request{
		Cart:          []Item{{Price: 10, Quantity: 1}},
		PaymentMethod: models.PaymentMethodCard,
	})
	if err == nil {
		t.Fatal("expected a generic failure from a provider error")
	}
}

func TestProcessAppleIsUnimplemented(t *testing.T) {
	o := NewOrchestrator(&fakeIntents{}, "usd")
	_, err := o.Process(context.Background(), Request{
		Cart:          []Item{{Price: 10, Quantity: 1}},
		PaymentMethod: models.PaymentMethodApple,
	})
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("expected ErrUnsupportedMethod, got %v", err)
	}
}

func TestProcessEmptyCart(t *testing.T) {
	o := NewOrchestrator(&fakeIntents{}, "usd")
	_, err := o.Process(context.Background(), Request{PaymentMethod: models.PaymentMethodCOD})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}
