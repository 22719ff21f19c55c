package models

// PaymentMethod selects how an order is settled.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"    // synchronous cash-on-delivery placement
	PaymentOnline PaymentMethod = "Online" // backend returns a redirect URL; settles out-of-band
)

// Valid reports whether the method is one the checkout flow can dispatch.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentOnline
}
