package models

import "errors"

// Status is an order's lifecycle state. Transitions are enforced by the
// backend; this policy only decides what controls the views may offer.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusOrderPlaced Status = "Order Placed"
	StatusDelivered   Status = "Delivered"
	StatusCancelled   Status = "Cancelled"
)

// ErrTerminalStatus is returned when a view asks for a transition out of a
// terminal status. The backend's own rejection stays authoritative.
var ErrTerminalStatus = errors.New("order can no longer be modified")

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next lists the statuses a view may offer as transition targets. Both the
// buyer and seller order lists consult this one policy.
func (s Status) Next() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusOrderPlaced, StatusCancelled}
	case StatusOrderPlaced:
		return []Status{StatusDelivered, StatusCancelled}
	default:
		return nil
	}
}

// CanTransitionTo reports whether the policy allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range s.Next() {
		if next == target {
			return true
		}
	}
	return false
}
