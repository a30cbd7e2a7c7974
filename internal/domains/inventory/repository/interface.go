package repository

import (
	"context"

	"watchitup-backend/internal/domains/inventory/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository manipulates stock rows on products and product_variants.
// All mutating methods run inside a caller-owned transaction so that an
// order placement (or cancellation) commits stock changes together with
// the order rows.
type Repository interface {
	// GetStockForUpdateWithTx locks the stock row for the line and
	// returns the current quantity. Locks product_variants when the
	// line has a variant, products otherwise.
	GetStockForUpdateWithTx(ctx context.Context, tx pgx.Tx, line model.Line) (int, error)

	// AdjustStockWithTx applies delta to the locked stock row and
	// records a stock movement for the audit trail.
	AdjustStockWithTx(ctx context.Context, tx pgx.Tx, line model.Line, delta int, movementType string, referenceID uuid.UUID) error

	// GetAvailable reads the current quantity without locking. Used
	// for pre-checks where staleness is acceptable.
	GetAvailable(ctx context.Context, line model.Line) (int, error)

	// ListMovements returns the audit trail for a reference, newest first.
	ListMovements(ctx context.Context, referenceID uuid.UUID) ([]model.StockMovement, error)
}
