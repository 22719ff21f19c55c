// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/PoonjothiV/grocerywebsites/billing"
	"github.com/PoonjothiV/grocerywebsites/checkout"
	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/controllers"
	"github.com/PoonjothiV/grocerywebsites/routes"
	"github.com/PoonjothiV/grocerywebsites/seller"
	"github.com/PoonjothiV/grocerywebsites/store"
	"github.com/PoonjothiV/grocerywebsites/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to the grocery backend
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:4000"
	}
	backend, err := client.New(backendURL)
	if err != nil {
		log.Fatal(err)
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "$"
	}

	// Initialize the session store and warm the catalog snapshot
	appStore := store.New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	products, err := backend.Products(ctx, "")
	cancel()
	if err != nil {
		log.Printf("Could not load catalog snapshot yet: %v", err)
	} else {
		appStore.SetCatalog(products)
	}

	// Initialize EmailService when mailing is configured
	var emailService *utils.EmailService
	if os.Getenv("POSTMARK_API_TOKEN") != "" {
		emailService = utils.NewEmailService()
	}

	// Initialize services and controllers
	checkoutService := checkout.NewService(backend, appStore)
	sellerService := seller.NewService(backend)
	renderer := &billing.Renderer{Currency: currency}

	cartController := controllers.NewCartController(appStore, backend)
	orderController := controllers.NewOrderController(checkoutService, backend)
	billController := controllers.NewBillController(appStore, renderer, emailService)
	sellerController := controllers.NewSellerController(sellerService, appStore, backend, currency)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, cartController, orderController, billController, sellerController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
