package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is an ephemeral printable summary of a cart. It exists only long
// enough to render; nothing persists it.
type Bill struct {
	Number          string          `json:"number"`
	CustomerName    string          `json:"customerName"`
	Items           []LineItem      `json:"items"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ShippingAddress string          `json:"shippingAddress"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
