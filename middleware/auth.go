package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-labs/velora-backend-go/models"
	"github.com/velora-labs/velora-backend-go/utils"
)

// AccessDeniedMessage is the fixed error surfaced when a non-admin
// account reaches an admin surface.
const AccessDeniedMessage = "Access denied. This account does not have admin privileges."

// AuthMiddleware validates the bearer token and puts the user id and
// role on the request context.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing authorization header"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid authorization header format"})
			}

			claims, err := utils.ValidateJWT(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID"})
			}

			c.Set("userID", userID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

// AdminOnly gates the admin surface on the role carried by the token.
// Anything but "admin" gets the fixed access-denied message.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != models.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": AccessDeniedMessage})
			}
			return next(c)
		}
	}
}
