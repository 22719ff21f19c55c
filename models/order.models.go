package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of a placed order. The backend populates the full
// product document when it serves order lists.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Order is a backend-owned record. The client only requests status
// transitions and reflects the latest known state.
type Order struct {
	ID          primitive.ObjectID `json:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId,omitempty"`
	Items       []OrderItem        `json:"items"`
	Address     OrderAddress       `json:"address"`
	Amount      decimal.Decimal    `json:"amount"`
	PaymentType string             `json:"paymentType"`
	IsPaid      bool               `json:"isPaid"`
	Status      Status             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// OrderAddress is either an embedded address document or a bare address
// id, depending on whether the backend populated the reference.
type OrderAddress struct {
	Address
	Embedded bool `json:"-"`
}

func (oa *OrderAddress) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var id primitive.ObjectID
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*oa = OrderAddress{Address: Address{ID: id}}
		return nil
	}
	if err := json.Unmarshal(b, &oa.Address); err != nil {
		return err
	}
	oa.Embedded = true
	return nil
}

func (oa OrderAddress) MarshalJSON() ([]byte, error) {
	if !oa.Embedded {
		return json.Marshal(oa.ID)
	}
	return json.Marshal(oa.Address)
}

// OrderPayload is the submission body for order placement.
type OrderPayload struct {
	UserID  primitive.ObjectID `json:"userId"`
	Items   []OrderPayloadItem `json:"items"`
	Address primitive.ObjectID `json:"address"`
}

type OrderPayloadItem struct {
	Product  primitive.ObjectID `json:"product"`
	Quantity int                `json:"quantity"`
}
