package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-labs/velora-backend-go/checkout"
	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
	"github.com/velora-labs/velora-backend-go/utils"
)

var checkoutOrchestrator *checkout.Orchestrator

// InitCheckout wires the payment provider into the checkout handler.
func InitCheckout(intents checkout.IntentCreator, currency string) {
	checkoutOrchestrator = checkout.NewOrchestrator(intents, currency)
}

type checkoutRequest struct {
	Cart          []checkout.Item      `json:"cart"`
	Items         []models.CartItem    `json:"items,omitempty"`
	Address       models.Address       `json:"address"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

// Checkout recomputes the totals server-side and branches per payment
// method. cod/bank answer with an order id and a Pending order; card
// answers with the payment-intent client secret and a Processing order.
// Any failure collapses to a generic error; nothing retries.
func Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	res, err := checkoutOrchestrator.Process(c.Request().Context(), checkout.Request{
		Cart:          req.Cart,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		utils.CheckoutFailures.Inc()
		code := http.StatusInternalServerError
		if err == checkout.ErrEmptyCart || err == checkout.ErrUnsupportedMethod {
			code = http.StatusBadRequest
		}
		return c.JSON(code, map[string]string{"error": err.Error()})
	}

	userID := c.Get("userID").(primitive.ObjectID)
	order := buildOrder(userID.Hex(), req, res)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("orders").InsertOne(ctx, order); err != nil {
		log.Printf("Failed to persist order %s: %v", res.OrderID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	utils.OrdersCreated.WithLabelValues(string(req.PaymentMethod)).Inc()

	if res.ClientSecret != "" {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":      true,
			"clientSecret": res.ClientSecret,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"orderId": res.OrderID,
	})
}

// buildOrder assembles the order document persisted after a successful
// checkout. Every order carries the session's user id; checkout is only
// reachable behind authentication.
func buildOrder(userID string, req checkoutRequest, res checkout.Result) models.Order {
	return models.Order{
		ID:            primitive.NewObjectID(),
		OrderID:       res.OrderID,
		UserID:        userID,
		Items:         req.Items,
		Subtotal:      res.Subtotal,
		Shipping:      res.Shipping,
		Total:         res.Total,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Status:        res.Status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// Health reports service liveness.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Velora backend is running",
	})
}
