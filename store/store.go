// Package store holds the per-session client state: the catalog snapshot
// and, per user, the cart and address selection. All reads project from
// the source-of-truth state; derived totals are never cached.
package store

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/models"
)

var (
	// ErrInvalidQuantity rejects writes of zero or negative quantities.
	// The mutator refuses them outright rather than coercing.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrNotInCart is returned when updating or removing an absent entry.
	ErrNotInCart = errors.New("product is not in the cart")
	// ErrUnknownAddress is returned when selecting an address that was
	// never fetched for the user.
	ErrUnknownAddress = errors.New("address not found")
)

// session is one user's slice of state. Cart, address list, and selection
// are independent substates updated by disjoint completions.
type session struct {
	cart            []models.CartEntry
	addresses       []models.Address
	selectedAddress *models.Address
}

// Store is the shared application-state container. Each mutation happens
// under the lock in response to a single user event; backend calls run
// outside it.
type Store struct {
	mu       sync.RWMutex
	catalog  []models.Product
	sessions map[primitive.ObjectID]*session
}

func New() *Store {
	return &Store{sessions: make(map[primitive.ObjectID]*session)}
}

func (s *Store) session(userID primitive.ObjectID) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{}
		s.sessions[userID] = sess
	}
	return sess
}

// SetCatalog replaces the catalog snapshot.
func (s *Store) SetCatalog(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append([]models.Product(nil), products...)
}

// Catalog returns a copy of the current snapshot.
func (s *Store) Catalog() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.catalog...)
}

// Product resolves a catalog entry by id.
func (s *Store) Product(id primitive.ObjectID) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// SetProductStock patches the snapshot after the backend confirms a stock
// toggle, so the seller list reflects it without a full re-fetch.
func (s *Store) SetProductStock(id primitive.ObjectID, inStock bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			s.catalog[i].InStock = inStock
			return
		}
	}
}

// AddToCart adds quantity of a product, merging with an existing entry.
func (s *Store) AddToCart(userID, productID primitive.ObjectID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	for i := range sess.cart {
		if sess.cart[i].ProductID == productID {
			sess.cart[i].Quantity += quantity
			return nil
		}
	}
	sess.cart = append(sess.cart, models.CartEntry{ProductID: productID, Quantity: quantity})
	return nil
}

// UpdateCartItem sets an entry's quantity.
func (s *Store) UpdateCartItem(userID, productID primitive.ObjectID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	for i := range sess.cart {
		if sess.cart[i].ProductID == productID {
			sess.cart[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotInCart
}

// RemoveFromCart drops an entry. Remaining entries keep their order.
func (s *Store) RemoveFromCart(userID, productID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	for i := range sess.cart {
		if sess.cart[i].ProductID == productID {
			sess.cart = append(sess.cart[:i], sess.cart[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

// ClearCart empties the user's cart. Called only on checkout success or an
// explicit clear.
func (s *Store) ClearCart(userID primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(userID).cart = nil
}

// Cart returns a copy of the user's cart entries in insertion order.
func (s *Store) Cart(userID primitive.ObjectID) []models.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	return append([]models.CartEntry(nil), sess.cart...)
}

// CartCount is the number of units across all entries.
func (s *Store) CartCount(userID primitive.ObjectID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return 0
	}
	count := 0
	for _, entry := range sess.cart {
		count += entry.Quantity
	}
	return count
}

// Lines projects the user's cart against the current catalog snapshot.
func (s *Store) Lines(userID primitive.ObjectID) []models.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	return ProjectCart(s.catalog, sess.cart)
}

// CartAmount is the current cart total, recomputed on every call.
func (s *Store) CartAmount(userID primitive.ObjectID) decimal.Decimal {
	return CartTotal(s.Lines(userID))
}

// SetAddresses stores the fetched address list. The first address becomes
// the selection when none is held yet, matching the storefront default.
func (s *Store) SetAddresses(userID primitive.ObjectID, addresses []models.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	sess.addresses = append([]models.Address(nil), addresses...)
	if sess.selectedAddress == nil && len(sess.addresses) > 0 {
		selected := sess.addresses[0]
		sess.selectedAddress = &selected
	}
}

// Addresses returns a copy of the user's fetched addresses.
func (s *Store) Addresses(userID primitive.ObjectID) []models.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	return append([]models.Address(nil), sess.addresses...)
}

// SelectAddress picks one of the fetched addresses for checkout.
func (s *Store) SelectAddress(userID, addressID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	for _, addr := range sess.addresses {
		if addr.ID == addressID {
			selected := addr
			sess.selectedAddress = &selected
			return nil
		}
	}
	return ErrUnknownAddress
}

// SelectedAddress returns the current selection, or nil when none exists.
func (s *Store) SelectedAddress(userID primitive.ObjectID) *models.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok || sess.selectedAddress == nil {
		return nil
	}
	selected := *sess.selectedAddress
	return &selected
}
