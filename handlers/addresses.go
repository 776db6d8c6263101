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

// Addresses live as an embedded array on the customer document.

func GetAddresses(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var customer models.Customer
	err := database.DB.Collection("customers").FindOne(
		c.Request().Context(),
		bson.M{"_id": userID},
	).Decode(&customer)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	return c.JSON(http.StatusOK, customer.Addresses)
}

func AddAddress(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var address models.Address
	if err := c.Bind(&address); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid address data"})
	}
	if address.ID.IsZero() {
		address.ID = primitive.NewObjectID()
	}
	if address.Type == "" {
		address.Type = "shipping"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB.Collection("customers")

	// A new default unsets the previous one first.
	if address.IsDefault {
		_, err := coll.UpdateOne(ctx, bson.M{"_id": userID},
			bson.M{"$set": bson.M{"addresses.$[].isDefault": false}})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update default status"})
		}
	}

	_, err := coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$push": bson.M{"addresses": address},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add address"})
	}

	return c.JSON(http.StatusOK, address)
}

func DeleteAddress(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)
	addressID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid address ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("customers").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$pull": bson.M{"addresses": bson.M{"_id": addressID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete address"})
	}
	if result.ModifiedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Address not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Address deleted successfully"})
}

// GetProfile returns the caller's own customer document.
func GetProfile(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var customer models.Customer
	err := database.DB.Collection("customers").FindOne(
		c.Request().Context(),
		bson.M{"_id": userID},
	).Decode(&customer)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	customer.Password = ""
	return c.JSON(http.StatusOK, customer)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func UpdateProfile(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.DB.Collection("customers").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{
			"name":      req.Name,
			"phone":     req.Phone,
			"updatedAt": time.Now(),
		},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update profile"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}
