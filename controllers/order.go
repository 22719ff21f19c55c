// controllers/order.go
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/checkout"
	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/seller"
)

// OrderController handles order placement and the buyer's order list
type OrderController struct {
	Checkout *checkout.Service
	Backend  *client.Client
}

// NewOrderController creates a new OrderController
func NewOrderController(co *checkout.Service, backend *client.Client) *OrderController {
	return &OrderController{Checkout: co, Backend: backend}
}

// PlaceOrder assembles the current cart into an order submission. COD
// confirms synchronously and clears the cart; online payment answers with
// a redirect URL and leaves local state alone.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	user, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input struct {
		PaymentType models.PaymentMethod `json:"paymentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !input.PaymentType.Valid() {
		http.Error(w, "Invalid payment method", http.StatusBadRequest)
		return
	}

	result, err := oc.Checkout.PlaceOrder(r.Context(), token, user, input.PaymentType)
	if err != nil {
		writeError(w, err)
		return
	}

	if result.RedirectURL != "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"url": result.RedirectURL})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": result.Message})
}

// MyOrders serves the buyer's own orders as display rows. Only Pending
// orders are deletable; every other row is locked.
func (oc *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	_, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	orders, err := oc.Backend.UserOrders(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": seller.ProjectBuyerOrders(orders),
	})
}

// UpdateMyOrderStatus forwards a status transition through the buyer-side
// backend endpoint. No buyer row advertises this action; the backend's own
// verdict decides whether the transition is legal.
func (oc *OrderController) UpdateMyOrderStatus(w http.ResponseWriter, r *http.Request) {
	_, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	params := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var input struct {
		Status models.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	message, err := oc.Backend.UpdateOrderStatus(r.Context(), token, orderID, input.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}

// DeleteMyOrder deletes one of the buyer's Pending orders. The row set
// changes only after the backend confirms.
func (oc *OrderController) DeleteMyOrder(w http.ResponseWriter, r *http.Request) {
	_, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	params := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	orders, err := oc.Backend.UserOrders(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	for _, order := range orders {
		if order.ID == orderID && order.Status != models.StatusPending {
			writeError(w, models.ErrTerminalStatus)
			return
		}
	}

	message, err := oc.Backend.DeleteOrder(r.Context(), token, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}
