// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/PoonjothiV/grocerywebsites/controllers"
	"github.com/PoonjothiV/grocerywebsites/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, cartController *controllers.CartController, orderController *controllers.OrderController, billController *controllers.BillController, sellerController *controllers.SellerController) {
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/product/list", cartController.GetProducts).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/items/{product_id}", cartController.UpdateCartItem).Methods("PUT")
	protected.HandleFunc("/cart/items/{product_id}", cartController.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/address/get", cartController.GetAddresses).Methods("GET")
	protected.HandleFunc("/address/select", cartController.SelectAddress).Methods("PUT")

	// Order routes
	protected.HandleFunc("/order", orderController.PlaceOrder).Methods("POST")
	protected.HandleFunc("/order/user", orderController.MyOrders).Methods("GET")
	protected.HandleFunc("/order/{id}/status", orderController.UpdateMyOrderStatus).Methods("PUT")
	protected.HandleFunc("/order/{id}", orderController.DeleteMyOrder).Methods("DELETE")

	// Bill routes
	protected.HandleFunc("/bill", billController.DownloadBill).Methods("GET")
	protected.HandleFunc("/bill", billController.CreateBill).Methods("POST")
	protected.HandleFunc("/bill/email", billController.EmailBill).Methods("POST")

	// Seller routes
	sellerRoutes := api.PathPrefix("/seller").Subrouter()
	sellerRoutes.Use(middleware.AuthMiddleware)
	sellerRoutes.Use(middleware.SellerMiddleware)
	sellerRoutes.HandleFunc("/orders", sellerController.GetOrders).Methods("GET")
	sellerRoutes.HandleFunc("/orders/{id}/status", sellerController.UpdateOrderStatus).Methods("PUT")
	sellerRoutes.HandleFunc("/orders/{id}", sellerController.DeleteOrder).Methods("DELETE")
	sellerRoutes.HandleFunc("/products", sellerController.GetProducts).Methods("GET")
	sellerRoutes.HandleFunc("/products/export", sellerController.ExportProducts).Methods("GET")
	sellerRoutes.HandleFunc("/products/stock", sellerController.ToggleStock).Methods("POST")
	sellerRoutes.HandleFunc("/users", sellerController.GetUsers).Methods("GET")
	sellerRoutes.HandleFunc("/users/{id}", sellerController.DeleteUser).Methods("DELETE")
}
