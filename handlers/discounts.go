package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
)

// Discounts are configuration records managed from the dashboard.
// Nothing evaluates them against carts at checkout time.

func GetDiscounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("discounts").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch discounts"})
	}
	defer cursor.Close(ctx)

	var discounts []models.Discount
	for cursor.Next(ctx) {
		var discount models.Discount
		cursor.Decode(&discount)
		discounts = append(discounts, discount)
	}

	return c.JSON(http.StatusOK, discounts)
}

func CreateDiscount(c echo.Context) error {
	var discount models.Discount
	if err := c.Bind(&discount); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	switch discount.Type {
	case models.DiscountTypeCoupon, models.DiscountTypeRoleBased,
		models.DiscountTypeBOGO, models.DiscountTypeAutomatic:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid discount type"})
	}
	if discount.Type == models.DiscountTypeCoupon && discount.Code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Coupon discounts need a code"})
	}
	if discount.Status == "" {
		discount.Status = "Active"
	}

	discount.ID = primitive.NewObjectID()
	discount.UsageCount = 0
	discount.CreatedAt = time.Now()
	discount.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("discounts").InsertOne(ctx, discount); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create discount"})
	}

	return c.JSON(http.StatusCreated, discount)
}

func UpdateDiscount(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid discount ID"})
	}

	var discount models.Discount
	if err := c.Bind(&discount); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"type":       discount.Type,
		"code":       discount.Code,
		"value":      discount.Value,
		"status":     discount.Status,
		"usageLimit": discount.UsageLimit,
		"startsAt":   discount.StartsAt,
		"endsAt":     discount.EndsAt,
		"updatedAt":  time.Now(),
	}}

	result, err := database.DB.Collection("discounts").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update discount"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Discount not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Discount updated successfully"})
}

func DeleteDiscount(c echo.Context) error {
	return deleteByID(c, "discounts", "Discount")
}
