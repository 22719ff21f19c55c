package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/store"
)

// CartController handles cart-related requests
type CartController struct {
	Store   *store.Store
	Backend *client.Client
}

// NewCartController creates a new CartController
func NewCartController(st *store.Store, backend *client.Client) *CartController {
	return &CartController{Store: st, Backend: backend}
}

// GetCart projects the user's cart against the catalog snapshot. Totals
// are recomputed from source state on every request.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":           cc.Store.Lines(user.ID),
		"amount":          cc.Store.CartAmount(user.ID),
		"count":           cc.Store.CartCount(user.ID),
		"selectedAddress": cc.Store.SelectedAddress(user.ID),
	})
}

// AddToCart adds a product to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input struct {
		ProductID primitive.ObjectID `json:"productId"`
		Quantity  *int               `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	// An omitted quantity means one unit; an explicit zero is rejected by
	// the store, never coerced.
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	if _, ok := cc.Store.Product(input.ProductID); !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := cc.Store.AddToCart(user.ID, input.ProductID, quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item added to cart"})
}

// UpdateCartItem sets the quantity of an entry. Zero and negative values
// are rejected, never coerced.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	params := mux.Vars(r)
	productID, err := primitive.ObjectIDFromHex(params["product_id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := cc.Store.UpdateCartItem(user.ID, productID, input.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Cart updated"})
}

// RemoveFromCart removes a product from the user's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	params := mux.Vars(r)
	productID, err := primitive.ObjectIDFromHex(params["product_id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	if err := cc.Store.RemoveFromCart(user.ID, productID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item removed from cart"})
}

// ClearCart empties the user's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}
	cc.Store.ClearCart(user.ID)
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Cart cleared"})
}

// GetAddresses fetches the user's saved addresses from the backend and
// stores them for checkout. The first address becomes the default
// selection when none is held.
func (cc *CartController) GetAddresses(w http.ResponseWriter, r *http.Request) {
	user, token, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	addresses, err := cc.Backend.Addresses(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	cc.Store.SetAddresses(user.ID, addresses)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"addresses":       addresses,
		"selectedAddress": cc.Store.SelectedAddress(user.ID),
	})
}

// SelectAddress picks one of the fetched addresses for checkout
func (cc *CartController) SelectAddress(w http.ResponseWriter, r *http.Request) {
	user, _, err := requestIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input struct {
		AddressID primitive.ObjectID `json:"addressId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := cc.Store.SelectAddress(user.ID, input.AddressID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Address selected"})
}

// GetProducts refreshes the catalog snapshot from the backend and serves
// it. The snapshot is read-only for the session between fetches.
func (cc *CartController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := cc.Backend.Products(r.Context(), "")
	if err != nil {
		// Serve the last known snapshot when the backend is unreachable;
		// fail only if there is nothing to show.
		cached := cc.Store.Catalog()
		if len(cached) == 0 {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"products": cached})
		return
	}

	cc.Store.SetCatalog(products)
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}
