package model

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestActiveTotalsRecomputesFromActiveItems(t *testing.T) {
	// One line cancelled, one still active at 300.
	items := []OrderItem{
		{ItemTotal: d("500"), Status: ItemStatusCancelled},
		{ItemTotal: d("300"), Status: ItemStatusActive},
	}

	totals := ActiveTotals(items, decimal.Zero)
	assert.True(t, totals.Subtotal.Equal(d("300")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(d("54")), "tax %s", totals.Tax)
	assert.True(t, totals.Shipping.Equal(d("50")), "shipping %s", totals.Shipping)
	assert.True(t, totals.Total.Equal(d("404")), "total %s", totals.Total)
}

func TestActiveTotalsExactlyZeroWhenNothingActive(t *testing.T) {
	items := []OrderItem{
		{ItemTotal: d("500"), Status: ItemStatusCancelled},
		{ItemTotal: d("300"), Status: ItemStatusReturned},
	}

	totals := ActiveTotals(items, decimal.Zero)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Shipping.IsZero(), "no shipping fee on an empty set")
	assert.True(t, totals.Total.IsZero())
}

func TestRefundableAmountFullOrder(t *testing.T) {
	items := []OrderItem{
		{ItemTotal: d("1000"), Status: ItemStatusActive},
	}
	// 1000 + 180 tax, free shipping above the threshold.
	assert.True(t, RefundableAmount(items, decimal.Zero).Equal(d("1180")))
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	n1 := GenerateOrderNumber(now)
	n2 := GenerateOrderNumber(now)

	assert.True(t, strings.HasPrefix(n1, "WU-20260315-"), "got %s", n1)
	assert.Len(t, n1, len("WU-20260315-")+8)
	assert.NotEqual(t, n1, n2, "order numbers must be unique")
}
