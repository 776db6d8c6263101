package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
)

func GetCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("customers").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch customers"})
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	for cursor.Next(ctx) {
		var customer models.Customer
		cursor.Decode(&customer)
		customer.Password = ""
		customers = append(customers, customer)
	}

	return c.JSON(http.StatusOK, customers)
}

func GetCustomer(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid customer ID"})
	}

	var customer models.Customer
	err = database.DB.Collection("customers").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch customer"})
	}

	customer.Password = ""
	return c.JSON(http.StatusOK, customer)
}

type updateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UpdateCustomer lets an admin edit a customer, including the role
// string the dashboard gate compares against.
func UpdateCustomer(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid customer ID"})
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Role != "" {
		update["role"] = req.Role
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("customers").UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update customer"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Customer not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Customer updated successfully"})
}

func DeleteCustomer(c echo.Context) error {
	return deleteByID(c, "customers", "Customer")
}

func GetCustomerRoles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("customerRoles").Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch roles"})
	}
	defer cursor.Close(ctx)

	var roles []models.CustomerRole
	for cursor.Next(ctx) {
		var role models.CustomerRole
		cursor.Decode(&role)
		roles = append(roles, role)
	}

	return c.JSON(http.StatusOK, roles)
}

func CreateCustomerRole(c echo.Context) error {
	var role models.CustomerRole
	if err := c.Bind(&role); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if role.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Role name is required"})
	}

	role.ID = primitive.NewObjectID()
	role.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("customerRoles").InsertOne(ctx, role); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create role"})
	}

	return c.JSON(http.StatusCreated, role)
}

func DeleteCustomerRole(c echo.Context) error {
	return deleteByID(c, "customerRoles", "Role")
}
