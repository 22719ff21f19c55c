package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry as served by the backend. The snapshot held
// here is read-only for the session; stock and price changes arrive only
// through a fresh fetch.
type Product struct {
	ID         primitive.ObjectID `json:"_id,omitempty"`
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	OfferPrice decimal.Decimal    `json:"offerPrice"`
	Image      []string           `json:"image,omitempty"`
	Weight     string             `json:"weight,omitempty"`
	InStock    bool               `json:"inStock"`
}

// CartEntry records a requested quantity for a product. Entries keep
// their insertion order so view rows stay stable across removals.
type CartEntry struct {
	ProductID primitive.ObjectID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// LineItem is a derived row joining a cart entry against the catalog.
// LineTotal is always recomputed from quantity and offer price, never
// stored on its own.
type LineItem struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}
