package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/shared/pricing"
)

// Cart is one per user. Items carry no prices; every read prices the
// cart from the live catalog so stale offers never leak into totals.
type Cart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartItem references a product or one of its variants. The pair
// (cart_id, product_id, variant_id) is unique; adding the same line
// again bumps the quantity.
type CartItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CartID    uuid.UUID  `json:"cart_id" db:"cart_id"`
	ProductID uuid.UUID  `json:"product_id" db:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty" db:"variant_id"`
	Quantity  int        `json:"quantity" db:"quantity"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// PricedItem is a cart line after offer resolution.
type PricedItem struct {
	ItemID         uuid.UUID       `json:"item_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	VariantID      *uuid.UUID      `json:"variant_id,omitempty"`
	ProductName    string          `json:"product_name"`
	VariantName    *string         `json:"variant_name,omitempty"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountedUnit decimal.Decimal `json:"discounted_unit_price"`
	UnitDiscount   decimal.Decimal `json:"unit_discount"`
	OfferName      *string         `json:"offer_name,omitempty"`
	LineTotal      decimal.Decimal `json:"line_total"`
	InStock        bool            `json:"in_stock"`
}

// PricedCart is the full checkout quote: per-line pricing plus the
// order-level totals after any coupon.
type PricedCart struct {
	CartID       uuid.UUID       `json:"cart_id"`
	Items        []PricedItem    `json:"items"`
	CouponCode   *string         `json:"coupon_code,omitempty"`
	CouponAmount decimal.Decimal `json:"coupon_amount"`
	Totals       pricing.Totals  `json:"totals"`
}
