// Package seller projects raw order records into display-ready rows for
// the seller panel and the buyer's order list. Action eligibility comes
// from the one status policy in models, so both lists gate identically.
package seller

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/client"
	"github.com/PoonjothiV/grocerywebsites/models"
)

// OrderRow is a seller display row. Delivered orders offer neither a
// status control nor deletion; every other status offers both, with the
// dropdown restricted to the policy's legal targets.
type OrderRow struct {
	Order           models.Order    `json:"order"`
	CanUpdateStatus bool            `json:"canUpdateStatus"`
	CanDelete       bool            `json:"canDelete"`
	StatusOptions   []models.Status `json:"statusOptions,omitempty"`
}

// ProjectOrders maps raw orders to seller rows.
func ProjectOrders(orders []models.Order) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, OrderRow{
			Order:           order,
			CanUpdateStatus: order.Status != models.StatusDelivered,
			CanDelete:       order.Status != models.StatusDelivered,
			StatusOptions:   order.Status.Next(),
		})
	}
	return rows
}

// BuyerRow is one row of the buyer's own order list. Buyers may only
// delete orders that are still Pending; everything else is locked.
type BuyerRow struct {
	Order     models.Order `json:"order"`
	CanDelete bool         `json:"canDelete"`
	Locked    bool         `json:"locked"`
}

// ProjectBuyerOrders maps raw orders to buyer rows. No buyer row ever
// advertises status-change eligibility; status transitions belong to the
// seller panel.
func ProjectBuyerOrders(orders []models.Order) []BuyerRow {
	rows := make([]BuyerRow, 0, len(orders))
	for _, order := range orders {
		deletable := order.Status == models.StatusPending
		rows = append(rows, BuyerRow{Order: order, CanDelete: deletable, Locked: !deletable})
	}
	return rows
}

// Service serves the seller order list. It keeps the last fetched list per
// seller so a confirmed mutation can patch the local copy in place; a full
// re-fetch converges to the same state.
type Service struct {
	backend *client.Client

	mu     sync.RWMutex
	orders map[primitive.ObjectID][]models.Order
}

func NewService(backend *client.Client) *Service {
	return &Service{
		backend: backend,
		orders:  make(map[primitive.ObjectID][]models.Order),
	}
}

// Orders fetches the full order list and replaces the seller's local copy.
func (s *Service) Orders(ctx context.Context, token string, sellerID primitive.ObjectID) ([]OrderRow, error) {
	orders, err := s.backend.SellerOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.orders[sellerID] = orders
	s.mu.Unlock()
	return ProjectOrders(orders), nil
}

// Rows projects the last known list without contacting the backend.
func (s *Service) Rows(sellerID primitive.ObjectID) []OrderRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ProjectOrders(s.orders[sellerID])
}

// UpdateStatus requests a transition. The local copy is pre-filtered by
// the status policy, but the backend's verdict stays authoritative: the
// patch is applied only after it confirms, and a rejection leaves the row
// untouched.
func (s *Service) UpdateStatus(ctx context.Context, token string, sellerID, orderID primitive.ObjectID, status models.Status) error {
	s.mu.RLock()
	for _, order := range s.orders[sellerID] {
		if order.ID == orderID && order.Status.Terminal() {
			s.mu.RUnlock()
			return models.ErrTerminalStatus
		}
	}
	s.mu.RUnlock()

	if _, err := s.backend.UpdateSellerOrderStatus(ctx, token, orderID, status); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, order := range s.orders[sellerID] {
		if order.ID == orderID {
			s.orders[sellerID][i].Status = status
			break
		}
	}
	return nil
}

// Delete removes an order. The row leaves the local list only after the
// backend confirms; a failed deletion keeps it, status unchanged.
func (s *Service) Delete(ctx context.Context, token string, sellerID, orderID primitive.ObjectID) error {
	s.mu.RLock()
	for _, order := range s.orders[sellerID] {
		if order.ID == orderID && order.Status == models.StatusDelivered {
			s.mu.RUnlock()
			return models.ErrTerminalStatus
		}
	}
	s.mu.RUnlock()

	if _, err := s.backend.DeleteOrder(ctx, token, orderID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.orders[sellerID]
	for i, order := range list {
		if order.ID == orderID {
			s.orders[sellerID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}
