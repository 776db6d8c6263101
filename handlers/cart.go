package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-labs/velora-backend-go/cart"
	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/models"
	"github.com/velora-labs/velora-backend-go/variant"
)

// loadStore seeds a cart.Store from the caller's customer document. On
// failure it writes the error response and reports ok=false.
func loadStore(c echo.Context) (*cart.Store, bool) {
	userID := c.Get("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB.Collection("customers")

	var customer models.Customer
	if err := coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&customer); err != nil {
		c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		return nil, false
	}

	store := cart.NewStore(userID.Hex(), cart.NewMongoMirror(coll))
	store.Load(customer.Cart, customer.Wishlist)
	return store, true
}

func GetCart(c echo.Context) error {
	store, ok := loadStore(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, store.Items())
}

// ReplaceCart overwrites the remote cart with the submitted array,
// the document-mirror write a client performs after local mutations.
func ReplaceCart(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var items []models.CartItem
	if err := c.Bind(&items); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if items == nil {
		items = []models.CartItem{}
	}

	mirror := cart.NewMongoMirror(database.DB.Collection("customers"))
	if err := mirror.SaveCart(c.Request().Context(), userID.Hex(), items); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}

	return c.JSON(http.StatusOK, items)
}

func AddCartItem(c echo.Context) error {
	var item models.CartItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if item.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item id is required"})
	}

	store, ok := loadStore(c)
	if !ok {
		return nil
	}

	if err := store.AddToCart(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}

	return c.JSON(http.StatusOK, store.Items())
}

func RemoveCartItem(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item id is required"})
	}

	store, ok := loadStore(c)
	if !ok {
		return nil
	}

	err := store.RemoveFromCart(c.Request().Context(), id, c.QueryParam("size"), c.QueryParam("color"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}

	return c.JSON(http.StatusOK, store.Items())
}

type updateQuantityRequest struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

func UpdateCartItemQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item id is required"})
	}

	store, ok := loadStore(c)
	if !ok {
		return nil
	}

	if err := store.UpdateQuantity(c.Request().Context(), req.ID, req.Delta, req.Size, req.Color); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}

	return c.JSON(http.StatusOK, store.Items())
}

type bulkAddRequest struct {
	ProductID  string         `json:"productId"`
	Quantities map[string]int `json:"quantities"`
}

// BulkAddToCart turns the quantity grid entered against the variant
// matrix into cart lines. Zero rows are skipped; quantities clamp to
// each variant's stock; the submitted grid is consumed in one shot.
func BulkAddToCart(c echo.Context) error {
	var req bulkAddRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := database.DB.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	items := variant.BulkCartItems(product, req.Quantities)

	store, ok := loadStore(c)
	if !ok {
		return nil
	}
	for _, item := range items {
		if err := store.AddToCart(c.Request().Context(), item); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"added": len(items),
		"cart":  store.Items(),
	})
}

func GetWishlist(c echo.Context) error {
	store, ok := loadStore(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, store.WishlistItems())
}

func AddWishlistItem(c echo.Context) error {
	var item models.WishlistItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if item.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item id is required"})
	}

	store, ok := loadStore(c)
	if !ok {
		return nil
	}

	if err := store.AddToWishlist(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save wishlist"})
	}

	return c.JSON(http.StatusOK, store.WishlistItems())
}

func RemoveWishlistItem(c echo.Context) error {
	store, ok := loadStore(c)
	if !ok {
		return nil
	}

	if err := store.RemoveFromWishlist(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save wishlist"})
	}

	return c.JSON(http.StatusOK, store.WishlistItems())
}
