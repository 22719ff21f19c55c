package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/seller"
	"github.com/PoonjothiV/grocerywebsites/store"
)

// SellerController handles the seller administration panel
type SellerController struct {
	Orders   *seller.Service
	Store    *store.Store
	Backend  *client.Client
	Currency string
}

// NewSellerController creates a new SellerController
func NewSellerController(orders *seller.Service, st *store.Store, backend *client.Client, currency string) *SellerController {
	return &SellerController{Orders: orders, Store: st, Backend: backend, Currency: currency}
}

// GetOrders serves every order as display rows with action eligibility.
func (sc *SellerController) GetOrders(w http.ResponseWriter, r *http.Request) {
	user, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rows, err := sc.Orders.Orders(r.Context(), token, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": rows})
}

// UpdateOrderStatus requests a status transition for an order.
func (sc *SellerController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	user, token, err := requestIdentity(r)
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

	if err := sc.Orders.UpdateStatus(r.Context(), token, user.ID, orderID, input.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Status updated"})
}

// DeleteOrder deletes an order after backend confirmation.
func (sc *SellerController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	user, token, err := requestIdentity(r)
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

	if err := sc.Orders.Delete(r.Context(), token, user.ID, orderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Order deleted successfully"})
}

// GetProducts serves the catalog filtered by search text and category.
func (sc *SellerController) GetProducts(w http.ResponseWriter, r *http.Request) {
	if _, _, err := requestIdentity(r); err != nil {
		writeError(w, err)
		return
	}

	catalog := sc.Store.Catalog()
	filtered := seller.FilterProducts(catalog, r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products":   filtered,
		"categories": seller.Categories(catalog),
	})
}

// ExportProducts downloads the filtered product list as an Excel sheet.
func (sc *SellerController) ExportProducts(w http.ResponseWriter, r *http.Request) {
	if _, _, err := requestIdentity(r); err != nil {
		writeError(w, err)
		return
	}

	filtered := seller.FilterProducts(sc.Store.Catalog(), r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	if err := seller.ExportProducts(w, sc.Currency, filtered); err != nil {
		http.Error(w, "Failed to export products", http.StatusInternalServerError)
	}
}

// ToggleStock flips a product's in-stock flag through the backend, then
// patches the local snapshot once it confirms.
func (sc *SellerController) ToggleStock(w http.ResponseWriter, r *http.Request) {
	_, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input struct {
		ID      primitive.ObjectID `json:"id"`
		InStock bool               `json:"inStock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	message, err := sc.Backend.SetProductStock(r.Context(), token, input.ID, input.InStock)
	if err != nil {
		writeError(w, err)
		return
	}
	sc.Store.SetProductStock(input.ID, input.InStock)
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}

// GetUsers lists every registered user.
func (sc *SellerController) GetUsers(w http.ResponseWriter, r *http.Request) {
	_, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := sc.Backend.Users(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// DeleteUser removes a user by id.
func (sc *SellerController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	_, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	params := mux.Vars(r)
	userID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	message, err := sc.Backend.DeleteUser(r.Context(), token, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}
