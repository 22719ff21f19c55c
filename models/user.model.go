package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address represents a delivery address fetched for the user. Selection
// of one address is ephemeral session state, never written back.
type Address struct {
	ID        primitive.ObjectID `json:"_id,omitempty"`
	FirstName string             `json:"firstName,omitempty"`
	LastName  string             `json:"lastName,omitempty"`
	Street    string             `json:"street"`
	City      string             `json:"city"`
	State     string             `json:"state"`
	Zipcode   int                `json:"zipcode,omitempty"`
	Country   string             `json:"country"`
	Phone     string             `json:"phone"`
}

// Line renders the single-line form used on the cart summary and the bill.
func (a Address) Line() string {
	return strings.Join([]string{a.Street, a.City, a.State, a.Country}, ", ")
}

// User is the identity the backend authenticated. Only display fields are
// held here; credentials never reach this tier.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Photo string             `json:"photo,omitempty"`
}
