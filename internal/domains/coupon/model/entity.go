package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType mirrors the offer discount shape.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon is a redeemable code with usage ceilings. used_count is a
// denormalized cache of the coupon_usages cardinality and is only ever
// updated in the same transaction as the usage insert.
type Coupon struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	Code          string           `json:"code" db:"code"`
	DiscountType  string           `json:"discount_type" db:"discount_type"`
	DiscountValue decimal.Decimal  `json:"discount_value" db:"discount_value"`
	MaxDiscount   *decimal.Decimal `json:"max_discount,omitempty" db:"max_discount"`
	MinimumAmount decimal.Decimal  `json:"minimum_amount" db:"minimum_amount"`
	UsageLimit    *int             `json:"usage_limit,omitempty" db:"usage_limit"`
	UsagePerUser  int              `json:"usage_per_user" db:"usage_per_user"`
	UsedCount     int              `json:"used_count" db:"used_count"`
	ValidFrom     time.Time        `json:"valid_from" db:"valid_from"`
	ValidTo       time.Time        `json:"valid_to" db:"valid_to"`
	IsActive      bool             `json:"is_active" db:"is_active"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

// CouponUsage is the append-only redemption log, one row per successful
// redemption. It is the source of truth for per-user usage counts.
type CouponUsage struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	CouponID       uuid.UUID       `json:"coupon_id" db:"coupon_id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	OrderID        uuid.UUID       `json:"order_id" db:"order_id"`
	DiscountAmount decimal.Decimal `json:"discount_amount" db:"discount_amount"`
	UsedAt         time.Time       `json:"used_at" db:"used_at"`
}

// NormalizeCode uppercases and trims a coupon code. Codes are stored and
// compared in this form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidAt reports whether the coupon is active, inside its window and
// below its global usage limit.
func (cp *Coupon) IsValidAt(now time.Time) bool {
	if !cp.IsActive {
		return false
	}
	if now.Before(cp.ValidFrom) || now.After(cp.ValidTo) {
		return false
	}
	if cp.UsageLimit != nil && cp.UsedCount >= *cp.UsageLimit {
		return false
	}
	return true
}

// CalculateDiscount computes the discount for a cart subtotal.
// Assumes the coupon already validated against the subtotal.
func (cp *Coupon) CalculateDiscount(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal

	switch cp.DiscountType {
	case DiscountTypePercentage:
		discount = subtotal.Mul(cp.DiscountValue).Div(decimal.NewFromInt(100))
		if cp.MaxDiscount != nil && discount.GreaterThan(*cp.MaxDiscount) {
			discount = *cp.MaxDiscount
		}
	case DiscountTypeFixed:
		discount = cp.DiscountValue
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
	default:
		return decimal.Zero
	}

	return discount.Round(2)
}
