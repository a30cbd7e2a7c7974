package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/shared/pricing"
)

// ActiveTotals recomputes the order's live amounts from its still-active
// items. When nothing is active every component is exactly zero; totals
// are never derived by subtracting refunds from the stored snapshot.
func ActiveTotals(items []OrderItem, couponDiscount decimal.Decimal) pricing.Totals {
	activeSubtotal := decimal.Zero
	anyActive := false

	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		anyActive = true
		activeSubtotal = activeSubtotal.Add(item.ItemTotal)
	}

	if !anyActive {
		return pricing.Totals{
			Subtotal: decimal.Zero,
			Tax:      decimal.Zero,
			Shipping: decimal.Zero,
			Discount: decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	return pricing.Compute(activeSubtotal, couponDiscount)
}

// GenerateOrderNumber builds a human-readable unique order number.
func GenerateOrderNumber(now time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("WU-%s-%s", now.Format("20060102"), suffix)
}

// RefundableAmount is what a full-order cancellation or return credits:
// the live total of the items still active at the time of the event.
func RefundableAmount(items []OrderItem, couponDiscount decimal.Decimal) decimal.Decimal {
	return ActiveTotals(items, couponDiscount).Total
}
