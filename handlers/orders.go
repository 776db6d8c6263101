package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
)

// orderScope pins order reads to the session's own documents. Admin
// sessions keep the filter they were given, so the dashboard can still
// browse every customer's history.
func orderScope(c echo.Context, filter bson.M) bson.M {
	if role, _ := c.Get("role").(string); role == models.RoleAdmin {
		return filter
	}
	if uid, ok := c.Get("userID").(primitive.ObjectID); ok {
		filter["userId"] = uid.Hex()
	}
	return filter
}

// GetOrders lists orders, newest first. Customers only ever see their
// own history; admin sessions may narrow with `?userId=`.
func GetOrders(c echo.Context) error {
	filter := bson.M{}
	if userID := c.QueryParam("userId"); userID != "" {
		filter["userId"] = userID
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}
	filter = orderScope(c, filter)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("orders").Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		cursor.Decode(&order)
		orders = append(orders, order)
	}

	return c.JSON(http.StatusOK, orders)
}

func GetOrder(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var order models.Order
	err = database.DB.Collection("orders").FindOne(c.Request().Context(), orderScope(c, bson.M{"_id": objID})).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, order)
}

func GetOrderStatus(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var order models.Order
	err = database.DB.Collection("orders").FindOne(c.Request().Context(), orderScope(c, bson.M{"_id": objID})).Decode(&order)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": string(order.Status)})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

var validStatuses = map[models.OrderStatus]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

// UpdateOrderStatus sets an order's status. Transitions are free: any
// status is reachable from any other by explicit admin action.
func UpdateOrderStatus(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if !validStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order status"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("orders").UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update order"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": string(req.Status)})
}
