package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
)

// The store settings live in a single document keyed "global".

func GetSettings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var settings models.Settings
	err := database.DB.Collection("settings").FindOne(ctx, bson.M{"_id": "global"}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// A fresh store has no settings document yet; hand back defaults.
			return c.JSON(http.StatusOK, models.Settings{Currency: "usd", FreeShippingAt: 200})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch settings"})
	}

	return c.JSON(http.StatusOK, settings)
}

func UpdateSettings(c echo.Context) error {
	var settings models.Settings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	settings.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.DB.Collection("settings").UpdateOne(
		ctx,
		bson.M{"_id": "global"},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update settings"})
	}

	return c.JSON(http.StatusOK, settings)
}
