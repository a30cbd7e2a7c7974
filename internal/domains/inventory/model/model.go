package model

import (
	"time"

	"github.com/google/uuid"
)

// Line identifies a quantity of a product (or one of its variants) to
// reserve or release. VariantID nil means stock lives on the product row.
type Line struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
}

// Movement types recorded in the stock audit trail.
const (
	MovementReserve = "reserve"
	MovementRelease = "release"
)

// StockMovement is the append-only audit record for every stock change.
type StockMovement struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	ProductID      uuid.UUID  `json:"product_id" db:"product_id"`
	VariantID      *uuid.UUID `json:"variant_id,omitempty" db:"variant_id"`
	MovementType   string     `json:"movement_type" db:"movement_type"`
	Quantity       int        `json:"quantity" db:"quantity"`
	QuantityBefore int        `json:"quantity_before" db:"quantity_before"`
	QuantityAfter  int        `json:"quantity_after" db:"quantity_after"`
	ReferenceID    uuid.UUID  `json:"reference_id" db:"reference_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}
