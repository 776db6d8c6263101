package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
	"github.com/velora-labs/velora-backend-go/variant"
)

// GetProducts lists products, optionally filtered by category or brand.
func GetProducts(c echo.Context) error {
	filter := bson.M{}
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}
	if brand := c.QueryParam("brand"); brand != "" {
		filter["brand"] = brand
	}

	collection := database.DB.Collection("products")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var product models.Product
		cursor.Decode(&product)
		products = append(products, product)
	}

	return c.JSON(http.StatusOK, products)
}

func GetProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	err = database.DB.Collection("products").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

// matrixResponse is the pivot grid consumed by the admin editor and the
// storefront bulk-order table.
type matrixResponse struct {
	RowAttr   string              `json:"rowAttr"`
	ColAttr   *string             `json:"colAttr"`
	RowValues []string            `json:"rowValues"`
	ColValues []string            `json:"colValues"`
	Cells     [][]*models.Variant `json:"cells"`
}

// GetProductMatrix pivots a variable product's variants over its first
// two attributes. `?swapped=true` exchanges the row and column axes.
// Simple products and products without realized variants get 204: the
// caller falls back to the flat view.
func GetProductMatrix(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	err = database.DB.Collection("products").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	m := variant.Build(product.Attributes, product.Variants, c.QueryParam("swapped") == "true")
	if m == nil {
		return c.NoContent(http.StatusNoContent)
	}

	resp := matrixResponse{
		RowAttr:   m.RowAttr,
		RowValues: m.RowValues,
		ColValues: m.ColValues,
	}
	if m.ColAttr != "" {
		col := m.ColAttr
		resp.ColAttr = &col
	}

	for _, row := range m.RowValues {
		cells := make([]*models.Variant, 0, len(m.ColValues))
		for _, col := range m.ColValues {
			if v, ok := m.At(row, col); ok {
				vv := v
				cells = append(cells, &vv)
			} else {
				cells = append(cells, nil)
			}
		}
		resp.Cells = append(resp.Cells, cells)
	}

	return c.JSON(http.StatusOK, resp)
}

func CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if product.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product name is required"})
	}
	if product.Type == "" {
		product.Type = models.ProductTypeSimple
	}
	if product.Type == models.ProductTypeVariable && (len(product.Attributes) == 0 || len(product.Variants) == 0) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Variable products need attributes and variants"})
	}
	for i := range product.Variants {
		if product.Variants[i].ID == "" {
			product.Variants[i].ID = uuid.NewString()
		}
	}
	if product.Status == "" {
		product.Status = "Active"
	}

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("products").InsertOne(ctx, product); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}

	return c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	for i := range product.Variants {
		if product.Variants[i].ID == "" {
			product.Variants[i].ID = uuid.NewString()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"category":    product.Category,
		"brand":       product.Brand,
		"price":       product.Price,
		"stock":       product.Stock,
		"type":        product.Type,
		"attributes":  product.Attributes,
		"variants":    product.Variants,
		"images":      product.Images,
		"status":      product.Status,
		"updatedAt":   time.Now(),
	}}

	result, err := database.DB.Collection("products").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

// DeleteProduct removes a product. Nothing cascades: categories and
// brands referencing it by name are left untouched.
func DeleteProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("products").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
