package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusProcessing},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusOutForDelivery},
		{OrderStatusOutForDelivery, OrderStatusDelivered},
		{OrderStatusDelivered, OrderStatusReturnRequested},
		{OrderStatusDelivered, OrderStatusReturned},
		{OrderStatusDelivered, OrderStatusRefunded},
		{OrderStatusReturnRequested, OrderStatusReturnApproved},
		{OrderStatusReturnRequested, OrderStatusReturned},
		{OrderStatusReturnRequested, OrderStatusDelivered},
		{OrderStatusReturnApproved, OrderStatusReturned},
		{OrderStatusReturned, OrderStatusRefunded},
	}
	for _, tt := range allowed {
		assert.NoError(t, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	rejected := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusRefunded, OrderStatusDelivered},
		{OrderStatusReturnApproved, OrderStatusDelivered},
	}
	for _, tt := range rejected {
		err := CanTransition(tt.from, tt.to)
		assert.Error(t, err, "%s -> %s", tt.from, tt.to)

		var invalid *InvalidTransitionError
		assert.ErrorAs(t, err, &invalid)
		assert.Equal(t, tt.from, invalid.From)
		assert.Equal(t, tt.to, invalid.To)
	}
}

func TestCanBeCancelled(t *testing.T) {
	cancellable := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing}
	for _, s := range cancellable {
		o := Order{Status: s}
		assert.True(t, o.CanBeCancelled(), "%s", s)
	}

	for _, s := range []OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		o := Order{Status: s}
		assert.False(t, o.CanBeCancelled(), "%s", s)
	}

	// An order whose payment was already refunded is done, whatever its
	// lifecycle status claims.
	o := Order{Status: OrderStatusPending, PaymentStatus: PaymentStatusRefunded}
	assert.False(t, o.CanBeCancelled(), "refunded payment")
}

func TestCanRequestReturnWindow(t *testing.T) {
	now := time.Now()

	within := now.Add(-6 * 24 * time.Hour)
	o := Order{Status: OrderStatusDelivered, DeliveredAt: &within}
	assert.True(t, o.CanRequestReturn(now), "delivered 6 days ago")

	expired := now.Add(-8 * 24 * time.Hour)
	o = Order{Status: OrderStatusDelivered, DeliveredAt: &expired}
	assert.False(t, o.CanRequestReturn(now), "delivered 8 days ago")

	o = Order{Status: OrderStatusShipped, DeliveredAt: &within}
	assert.False(t, o.CanRequestReturn(now), "not delivered")

	o = Order{Status: OrderStatusDelivered}
	assert.False(t, o.CanRequestReturn(now), "missing delivered_at")
}

func TestCanBeReactivated(t *testing.T) {
	assert.True(t, CanBeReactivated(OrderStatusPending))
	assert.True(t, CanBeReactivated(OrderStatusConfirmed))
	assert.True(t, CanBeReactivated(OrderStatusProcessing))

	assert.False(t, CanBeReactivated(OrderStatusShipped))
	assert.False(t, CanBeReactivated(OrderStatusDelivered))
	assert.False(t, CanBeReactivated(OrderStatusCancelled))
}
