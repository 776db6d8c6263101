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

func GetCategories(c echo.Context) error {
	collection := database.DB.Collection("categories")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch categories"})
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	for cursor.Next(ctx) {
		var category models.Category
		cursor.Decode(&category)
		categories = append(categories, category)
	}

	return c.JSON(http.StatusOK, categories)
}

func CreateCategory(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if category.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Category name is required"})
	}
	if category.Status == "" {
		category.Status = "Published"
	}

	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("categories").InsertOne(ctx, category); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create category"})
	}

	return c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid category ID"})
	}

	var category models.Category
	if err := c.Bind(&category); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      category.Name,
		"parent":    category.Parent,
		"image":     category.Image,
		"status":    category.Status,
		"updatedAt": time.Now(),
	}}

	result, err := database.DB.Collection("categories").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update category"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Category not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

// DeleteCategory removes the category document only. Products keep
// referencing the name they were created with; no cascade.
func DeleteCategory(c echo.Context) error {
	return deleteByID(c, "categories", "Category")
}

func GetBrands(c echo.Context) error {
	collection := database.DB.Collection("brands")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch brands"})
	}
	defer cursor.Close(ctx)

	var brands []models.Brand
	for cursor.Next(ctx) {
		var brand models.Brand
		cursor.Decode(&brand)
		brands = append(brands, brand)
	}

	return c.JSON(http.StatusOK, brands)
}

func CreateBrand(c echo.Context) error {
	var brand models.Brand
	if err := c.Bind(&brand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if brand.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Brand name is required"})
	}
	if brand.Status == "" {
		brand.Status = "Active"
	}

	brand.ID = primitive.NewObjectID()
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("brands").InsertOne(ctx, brand); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create brand"})
	}

	return c.JSON(http.StatusCreated, brand)
}

func UpdateBrand(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid brand ID"})
	}

	var brand models.Brand
	if err := c.Bind(&brand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      brand.Name,
		"website":   brand.Website,
		"logo":      brand.Logo,
		"status":    brand.Status,
		"updatedAt": time.Now(),
	}}

	result, err := database.DB.Collection("brands").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update brand"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Brand not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Brand updated successfully"})
}

func DeleteBrand(c echo.Context) error {
	return deleteByID(c, "brands", "Brand")
}

// deleteByID is the shared single-document delete used by the small
// admin collections.
func deleteByID(c echo.Context, collection, label string) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid " + label + " ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection(collection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete " + label})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": label + " not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": label + " deleted successfully"})
}
