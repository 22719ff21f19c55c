// Package billing computes and renders printable receipts. Everything here
// is a pure transformation of its inputs; nothing mutates cart or order
// state, and a rendering failure leaves the cart intact.
package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PoonjothiV/grocerywebsites/models"
	"github.com/PoonjothiV/grocerywebsites/store"
)

// taxRate is the fixed 2% applied to the subtotal.
var taxRate = decimal.New(2, -2)

const fallbackCustomerName = "Customer"

// NewBill snapshots the line items into a receipt. The subtotal is the
// cart total, tax is 2% of it rounded to the cent, and the grand total is
// their sum. A missing name or address falls back to an explicit marker.
func NewBill(lines []models.LineItem, customerName string, address *models.Address, method models.PaymentMethod, now time.Time) models.Bill {
	if strings.TrimSpace(customerName) == "" {
		customerName = fallbackCustomerName
	}
	shipping := "No address selected"
	if address != nil {
		shipping = address.Line()
	}

	subtotal := store.CartTotal(lines)
	tax := subtotal.Mul(taxRate).Round(2)

	return models.Bill{
		Number:          uuid.NewString(),
		CustomerName:    customerName,
		Items:           append([]models.LineItem(nil), lines...),
		PaymentMethod:   method,
		ShippingAddress: shipping,
		Subtotal:        subtotal,
		Tax:             tax,
		GrandTotal:      subtotal.Add(tax),
		GeneratedAt:     now,
	}
}

// Filename derives the export name from the customer name: lower-cased,
// whitespace collapsed to underscores. Identical names always produce the
// same name, so downloads are reproducible.
func Filename(customerName string) string {
	name := strings.ToLower(strings.Join(strings.Fields(customerName), "_"))
	if name == "" {
		name = strings.ToLower(fallbackCustomerName)
	}
	return "order-bill_" + name + ".pdf"
}
