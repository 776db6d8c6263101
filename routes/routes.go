package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velora-labs/velora-backend-go/handlers"
	customMiddleware "github.com/velora-labs/velora-backend-go/middleware"
)

func SetupRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/api/auth/signup", handlers.SignUp)
	e.POST("/api/auth/signin", handlers.SignIn)
	e.POST("/api/auth/admin/signin", handlers.AdminSignIn)

	e.GET("/api/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Storefront reads need no session.
	e.GET("/api/products", handlers.GetProducts)
	e.GET("/api/products/:id", handlers.GetProduct)
	e.GET("/api/products/:id/matrix", handlers.GetProductMatrix)
	e.GET("/api/categories", handlers.GetCategories)
	e.GET("/api/brands", handlers.GetBrands)
	e.GET("/api/blogs", handlers.GetBlogPosts)
	e.GET("/api/blogs/:slug", handlers.GetBlogPost)
	e.GET("/api/settings", handlers.GetSettings)
	e.GET("/api/stream/:collection", handlers.StreamCollection)
	e.GET("/api/stream/:collection/health", handlers.StreamHealth)

	// Authenticated storefront routes
	api := e.Group("/api", customMiddleware.AuthMiddleware())

	api.GET("/me", handlers.GetProfile)
	api.PUT("/me", handlers.UpdateProfile)
	api.GET("/me/addresses", handlers.GetAddresses)
	api.POST("/me/addresses", handlers.AddAddress)
	api.DELETE("/me/addresses/:id", handlers.DeleteAddress)

	api.GET("/cart", handlers.GetCart)
	api.PUT("/cart", handlers.ReplaceCart)
	api.POST("/cart/items", handlers.AddCartItem)
	api.DELETE("/cart/items/:id", handlers.RemoveCartItem)
	api.PUT("/cart/quantity", handlers.UpdateCartItemQuantity)
	api.POST("/cart/bulk", handlers.BulkAddToCart)

	api.GET("/wishlist", handlers.GetWishlist)
	api.POST("/wishlist", handlers.AddWishlistItem)
	api.DELETE("/wishlist/:id", handlers.RemoveWishlistItem)

	api.POST("/checkout", handlers.Checkout)
	api.GET("/orders", handlers.GetOrders)
	api.GET("/orders/:id", handlers.GetOrder)
	api.GET("/orders/:id/status", handlers.GetOrderStatus)

	// Admin dashboard routes
	admin := e.Group("/api/admin", customMiddleware.AuthMiddleware(), customMiddleware.AdminOnly())

	admin.POST("/products", handlers.CreateProduct)
	admin.PUT("/products/:id", handlers.UpdateProduct)
	admin.DELETE("/products/:id", handlers.DeleteProduct)

	admin.POST("/categories", handlers.CreateCategory)
	admin.PUT("/categories/:id", handlers.UpdateCategory)
	admin.DELETE("/categories/:id", handlers.DeleteCategory)
	admin.POST("/import/categories", handlers.ImportCategories)

	admin.POST("/brands", handlers.CreateBrand)
	admin.PUT("/brands/:id", handlers.UpdateBrand)
	admin.DELETE("/brands/:id", handlers.DeleteBrand)
	admin.POST("/import/brands", handlers.ImportBrands)

	admin.GET("/orders", handlers.GetOrders)
	admin.GET("/orders/:id", handlers.GetOrder)
	admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

	admin.GET("/customers", handlers.GetCustomers)
	admin.GET("/customers/:id", handlers.GetCustomer)
	admin.PUT("/customers/:id", handlers.UpdateCustomer)
	admin.DELETE("/customers/:id", handlers.DeleteCustomer)

	admin.GET("/roles", handlers.GetCustomerRoles)
	admin.POST("/roles", handlers.CreateCustomerRole)
	admin.DELETE("/roles/:id", handlers.DeleteCustomerRole)

	admin.GET("/discounts", handlers.GetDiscounts)
	admin.POST("/discounts", handlers.CreateDiscount)
	admin.PUT("/discounts/:id", handlers.UpdateDiscount)
	admin.DELETE("/discounts/:id", handlers.DeleteDiscount)

	admin.POST("/blogs", handlers.CreateBlogPost)
	admin.PUT("/blogs/:id", handlers.UpdateBlogPost)
	admin.DELETE("/blogs/:id", handlers.DeleteBlogPost)

	admin.PUT("/settings", handlers.UpdateSettings)
}
