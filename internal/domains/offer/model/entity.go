package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType represents valid discount types
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (dt DiscountType) IsValid() bool {
	switch dt {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	}
	return false
}

func (dt DiscountType) String() string {
	return string(dt)
}

// OfferRule is the discount shape shared by product and category offers.
type OfferRule struct {
	DiscountType  DiscountType     `json:"discount_type" db:"discount_type"`
	DiscountValue decimal.Decimal  `json:"discount_value" db:"discount_value"`
	MaxDiscount   *decimal.Decimal `json:"max_discount,omitempty" db:"max_discount"` // percentage only
	StartDate     time.Time        `json:"start_date" db:"start_date"`
	EndDate       time.Time        `json:"end_date" db:"end_date"`
	IsActive      bool             `json:"is_active" db:"is_active"`
}

// ProductOffer applies to a single product.
type ProductOffer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	OfferRule
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CategoryOffer applies to every product in a category.
type CategoryOffer struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CategoryID uuid.UUID `json:"category_id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	OfferRule
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsValidAt reports whether the rule is active and within its window.
func (r OfferRule) IsValidAt(now time.Time) bool {
	return r.IsActive && !now.Before(r.StartDate) && !now.After(r.EndDate)
}

// Discount computes the discount amount for a price.
// Percentage discounts are capped at MaxDiscount when set; any discount
// is additionally capped at the price itself so the result never goes
// negative.
func (r OfferRule) Discount(price decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal

	switch r.DiscountType {
	case DiscountTypePercentage:
		discount = price.Mul(r.DiscountValue).Div(decimal.NewFromInt(100))
		if r.MaxDiscount != nil && discount.GreaterThan(*r.MaxDiscount) {
			discount = *r.MaxDiscount
		}
	case DiscountTypeFixed:
		discount = r.DiscountValue
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(price) {
		discount = price
	}
	if discount.LessThan(decimal.Zero) {
		discount = decimal.Zero
	}

	return discount.Round(2)
}

// Validate checks the rule's internal consistency.
func (r OfferRule) Validate() error {
	if !r.DiscountType.IsValid() {
		return ErrInvalidDiscountType
	}
	if r.DiscountValue.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidDiscountValue
	}
	if r.DiscountType == DiscountTypePercentage && r.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPercentageTooHigh
	}
	if r.MaxDiscount != nil && r.DiscountType != DiscountTypePercentage {
		return ErrMaxDiscountNotAllowed
	}
	if r.EndDate.Before(r.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// OfferSource tells whether a resolved offer came from the product or
// its category. Product-level specificity wins exact ties.
type OfferSource string

const (
	OfferSourceProduct  OfferSource = "product"
	OfferSourceCategory OfferSource = "category"
)

// ResolvedOffer is the winner of best-offer resolution for a product.
type ResolvedOffer struct {
	OfferID uuid.UUID   `json:"offer_id"`
	Name    string      `json:"name"`
	Source  OfferSource `json:"source"`
	Rule    OfferRule   `json:"rule"`
}
