package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/velora-labs/velora-backend-go/config"
	"github.com/velora-labs/velora-backend-go/database"
	"github.com/velora-labs/velora-backend-go/handlers"
	"github.com/velora-labs/velora-backend-go/routes"
	"github.com/velora-labs/velora-backend-go/utils"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Payment provider
	stripeKey := config.GetEnv("STRIPE_SECRET_KEY", "")
	if stripeKey != "" {
		processor, err := utils.NewStripeProcessor(stripeKey)
		if err != nil {
			log.Fatal("Failed to init payment provider:", err)
		}
		handlers.InitCheckout(processor, config.GetEnv("CURRENCY", "usd"))
	} else {
		// cod/bank still work without a provider; card checkouts fail.
		log.Println("STRIPE_SECRET_KEY not set, card checkout disabled")
		handlers.InitCheckout(nil, config.GetEnv("CURRENCY", "usd"))
	}

	// Setup routes
	routes.SetupRoutes(e)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	log.Printf("Server starting on port %s...", port)
	e.Logger.Fatal(e.Start(":" + port))
}
