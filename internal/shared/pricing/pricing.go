package pricing

import (
	"github.com/shopspring/decimal"
)

// Pricing policy constants. These are business policy, not configuration:
// a flat 18% GST rate and free shipping above the threshold.
var (
	TaxRate               = decimal.NewFromFloat(0.18)
	FreeShippingThreshold = decimal.NewFromInt(500)
	FlatShippingFee       = decimal.NewFromInt(50)
)

// Totals is the monetary breakdown of a cart or an order.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Tax returns subtotal x 18%, rounded to the currency's smallest unit.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

// Shipping is free above the threshold, a flat fee otherwise.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// Compute builds checkout totals from a subtotal and a coupon discount.
// Tax and shipping are derived from the pre-coupon subtotal; the discount
// is subtracted last and the total never goes below zero.
func Compute(subtotal, discount decimal.Decimal) Totals {
	tax := Tax(subtotal)
	shipping := Shipping(subtotal)

	total := subtotal.Add(tax).Add(shipping).Sub(discount)
	if total.LessThan(decimal.Zero) {
		total = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
