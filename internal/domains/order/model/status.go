package model

import (
	"fmt"
	"time"
)

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusConfirmed       OrderStatus = "confirmed"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusOutForDelivery  OrderStatus = "out_for_delivery"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusReturnRequested OrderStatus = "return_requested"
	OrderStatusReturnApproved  OrderStatus = "return_approved"
	OrderStatusReturned        OrderStatus = "returned"
	OrderStatusRefunded        OrderStatus = "refunded"
)

func (os OrderStatus) IsValid() bool {
	_, ok := validTransitions[os]
	return ok
}

func (os OrderStatus) String() string {
	return string(os)
}

// ReturnWindow is how long after delivery a return may be requested.
const ReturnWindow = 7 * 24 * time.Hour

// validTransitions is the full lifecycle lattice. Terminal states map to
// an empty set so IsValid still recognises them.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {
		OrderStatusConfirmed,
		OrderStatusCancelled,
	},
	OrderStatusConfirmed: {
		OrderStatusProcessing,
		OrderStatusCancelled,
	},
	OrderStatusProcessing: {
		OrderStatusShipped,
		OrderStatusCancelled,
	},
	OrderStatusShipped: {
		OrderStatusOutForDelivery,
	},
	OrderStatusOutForDelivery: {
		OrderStatusDelivered,
	},
	OrderStatusDelivered: {
		OrderStatusReturnRequested,
		OrderStatusReturned,
		OrderStatusRefunded,
	},
	// An admin may complete a return straight from the request, so both
	// pre-approval states also reach returned.
	OrderStatusReturnRequested: {
		OrderStatusReturnApproved,
		OrderStatusReturned,
		OrderStatusDelivered,
	},
	OrderStatusReturnApproved: {
		OrderStatusReturned,
	},
	OrderStatusReturned: {
		OrderStatusRefunded,
	},
	OrderStatusCancelled: {},
	OrderStatusRefunded:  {},
}

// InvalidTransitionError names both endpoints so callers can report the
// exact rejected move.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// CanTransition checks one edge of the lifecycle lattice.
func CanTransition(from, to OrderStatus) error {
	allowed, ok := validTransitions[from]
	if !ok {
		return &InvalidTransitionError{From: from, To: to}
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// CanBeCancelled reports whether customer cancellation is still allowed.
// Once an order ships, only the return flow applies; an order whose
// payment was already refunded has nothing left to cancel.
func (o *Order) CanBeCancelled() bool {
	if o.PaymentStatus == PaymentStatusRefunded {
		return false
	}
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing:
		return true
	}
	return false
}

// CanRequestReturn reports whether the order is delivered and still
// inside the return window at the given time.
func (o *Order) CanRequestReturn(now time.Time) bool {
	if o.Status != OrderStatusDelivered || o.DeliveredAt == nil {
		return false
	}
	return now.Sub(*o.DeliveredAt) <= ReturnWindow
}

// CanBeReactivated reports whether a cancelled order may move back into
// the forward flow at the target status.
func CanBeReactivated(target OrderStatus) bool {
	switch target {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing:
		return true
	}
	return false
}
