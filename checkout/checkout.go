// Package checkout turns the current cart into an order submission.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/store"
)

var (
	// ErrUnauthenticated means no identity is present for the order.
	ErrUnauthenticated = errors.New("you must be logged in to place an order")
	// ErrMissingAddress means no delivery address is selected.
	ErrMissingAddress = errors.New("please select an address")
	// ErrEmptyCart means there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
)

// Assemble validates the preconditions in order (identity, address, items)
// and builds the submission payload. It touches no network and no state,
// so a rejection here is guaranteed to happen before any backend call.
func Assemble(user *models.User, address *models.Address, lines []models.LineItem) (models.OrderPayload, error) {
	if user == nil || user.ID.IsZero() {
		return models.OrderPayload{}, ErrUnauthenticated
	}
	if address == nil {
		return models.OrderPayload{}, ErrMissingAddress
	}
	if len(lines) == 0 {
		return models.OrderPayload{}, ErrEmptyCart
	}

	payload := models.OrderPayload{
		UserID:  user.ID,
		Address: address.ID,
		Items:   make([]models.OrderPayloadItem, 0, len(lines)),
	}
	for _, line := range lines {
		payload.Items = append(payload.Items, models.OrderPayloadItem{
			Product:  line.Product.ID,
			Quantity: line.Quantity,
		})
	}
	return payload, nil
}

// Result reports how a placement concluded. Exactly one of Message or
// RedirectURL is set, depending on the payment path.
type Result struct {
	Message     string `json:"message,omitempty"`
	RedirectURL string `json:"url,omitempty"`
}

// Service places assembled orders through the backend.
type Service struct {
	Backend *client.Client
	Store   *store.Store
}

func NewService(backend *client.Client, st *store.Store) *Service {
	return &Service{Backend: backend, Store: st}
}

// PlaceOrder assembles and submits the user's cart. On the COD path the
// cart is cleared only after the backend confirms. On the online path the
// backend's redirect URL is returned and local state is left alone; the
// transaction completes out-of-band. Any failure leaves the cart intact.
func (s *Service) PlaceOrder(ctx context.Context, token string, user *models.User, method models.PaymentMethod) (*Result, error) {
	var address *models.Address
	var lines []models.LineItem
	if user != nil {
		address = s.Store.SelectedAddress(user.ID)
		lines = s.Store.Lines(user.ID)
	}

	payload, err := Assemble(user, address, lines)
	if err != nil {
		return nil, err
	}

	switch method {
	case models.PaymentCOD:
		message, err := s.Backend.PlaceCODOrder(ctx, token, payload)
		if err != nil {
			return nil, err
		}
		s.Store.ClearCart(user.ID)
		return &Result{Message: message}, nil
	case models.PaymentOnline:
		redirect, err := s.Backend.PlaceOnlineOrder(ctx, token, payload)
		if err != nil {
			return nil, err
		}
		return &Result{RedirectURL: redirect}, nil
	default:
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}
}
