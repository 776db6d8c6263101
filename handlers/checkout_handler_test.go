package handlers

import (
	"testing"

	"github.com/velora-labs/velora-backend-go/checkout"
	"github.com/velora-labs/velora-backend-go/models"
)

func TestBuildOrderStampsSessionUser(t *testing.T) {
	req := checkoutRequest{
		Items:         []models.CartItem{{ID: "v1", Title: "Tee", Price: 50, Quantity: 3}},
		Address:       models.Address{City: "Oslo"},
		PaymentMethod: models.PaymentMethodCOD,
	}
	res := checkout.Result{
		OrderID:  "ORD-2026-ABCDEF1234",
		Subtotal: 150,
		Shipping: 25,
		Total:    175,
		Status:   models.OrderStatusPending,
	}

	order := buildOrder("user-hex-id", req, res)

	if order.UserID != "user-hex-id" {
		t.Fatalf("order UserID = %q, want session user", order.UserID)
	}
	if order.OrderID != res.OrderID {
		t.Fatalf("order OrderID = %q, want %q", order.OrderID, res.OrderID)
	}
	if order.Subtotal != 150 || order.Shipping != 25 || order.Total != 175 {
		t.Fatalf("order totals = %v/%v/%v, want recomputed 150/25/175",
			order.Subtotal, order.Shipping, order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("order status = %q, want Pending", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].ID != "v1" {
		t.Fatalf("order items not carried over: %+v", order.Items)
	}
	if order.Address.City != "Oslo" {
		t.Fatalf("order address not carried over: %+v", order.Address)
	}
}
