package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products for category-level offers.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Brand struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	IsActive bool      `json:"is_active" db:"is_active"`
}

// Product is a watch model. Stock lives either here (no variants) or on
// each variant; it is mutated only through the inventory domain.
type Product struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	CategoryID    uuid.UUID       `json:"category_id" db:"category_id"`
	BrandID       *uuid.UUID      `json:"brand_id,omitempty" db:"brand_id"`
	BasePrice     decimal.Decimal `json:"base_price" db:"base_price"`
	Description   string          `json:"description" db:"description"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// ProductVariant is a purchasable variation (strap, dial colour) with its
// own price and stock count.
type ProductVariant struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	ProductID     uuid.UUID       `json:"product_id" db:"product_id"`
	Name          string          `json:"name" db:"name"`
	SKU           string          `json:"sku" db:"sku"`
	Price         decimal.Decimal `json:"price" db:"price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// IsInStock reports whether any unit is available at product level.
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// ReferencePrice is the price offers are compared against: the cheapest
// active variant when variants exist, the base price otherwise.
func (p *Product) ReferencePrice(variants []ProductVariant) decimal.Decimal {
	ref := decimal.Zero
	found := false
	for _, v := range variants {
		if !v.IsActive {
			continue
		}
		if !found || v.Price.LessThan(ref) {
			ref = v.Price
			found = true
		}
	}
	if !found {
		return p.BasePrice
	}
	return ref
}

// UnitPrice resolves the price a cart line pays: variant price when the
// line has a variant, base price otherwise.
func (p *Product) UnitPrice(variant *ProductVariant) decimal.Decimal {
	if variant != nil {
		return variant.Price
	}
	return p.BasePrice
}
