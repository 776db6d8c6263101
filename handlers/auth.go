package handlers

import (
	"context"
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/middleware"
	"github.com/velora-labs/velora-backend-go/models"
	"github.com/velora-labs/velora-backend-go/utils"
)

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a storefront customer.
func SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}
	if !isValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email format"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password must be at least 8 characters"})
	}

	collection := database.DB.Collection("customers")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing := collection.FindOne(ctx, bson.M{"email": req.Email})
	if existing.Err() == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process password"})
	}

	customer := models.Customer{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      "customer",
		Addresses: []models.Address{},
		Cart:      []models.CartItem{},
		Wishlist:  []models.WishlistItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(ctx, customer); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	token, err := utils.GenerateJWT(customer.ID.Hex(), customer.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	customer.Password = ""
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user":  customer,
		"token": token,
	})
}

// SignIn authenticates any account and returns a session token.
func SignIn(c echo.Context) error {
	customer, ok := authenticate(c)
	if !ok {
		return nil
	}

	token, err := utils.GenerateJWT(customer.ID.Hex(), customer.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	customer.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":  customer,
		"token": token,
	})
}

// AdminSignIn authenticates against the admin dashboard. A valid
// credential with any role other than "admin" is rejected with the
// fixed access-denied message and receives no token, which is the
// forced sign-out of the dashboard flow.
func AdminSignIn(c echo.Context) error {
	customer, ok := authenticate(c)
	if !ok {
		return nil
	}

	if customer.Role != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, map[string]string{"error": middleware.AccessDeniedMessage})
	}

	token, err := utils.GenerateJWT(customer.ID.Hex(), customer.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	customer.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":  customer,
		"token": token,
	})
}

// authenticate binds the credentials and checks them. On failure it
// writes the error response itself and reports ok=false.
func authenticate(c echo.Context) (models.Customer, bool) {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
		return models.Customer{}, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var customer models.Customer
	err := database.DB.Collection("customers").FindOne(ctx, bson.M{"email": req.Email}).Decode(&customer)
	if err != nil {
		c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		return models.Customer{}, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		return models.Customer{}, false
	}

	return customer, true
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
