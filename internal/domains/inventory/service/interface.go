package service

import (
	"context"

	"watchitup-backend/internal/domains/inventory/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Service guards stock levels for order placement and release.
type Service interface {
	// Reserve decrements stock for every line, or none of them. The
	// first line with insufficient stock fails the whole batch; the
	// caller's transaction rollback undoes any lines already applied.
	Reserve(ctx context.Context, tx pgx.Tx, lines []model.Line, referenceID uuid.UUID) error

	// Release returns previously reserved stock. Used on cancellation
	// and completed returns.
	Release(ctx context.Context, tx pgx.Tx, lines []model.Line, referenceID uuid.UUID) error

	// CheckAvailability reports whether every line could currently be
	// reserved. Non-locking, so callers must still Reserve inside a
	// transaction before trusting the answer.
	CheckAvailability(ctx context.Context, lines []model.Line) error

	// Movements returns the audit trail for a reference.
	Movements(ctx context.Context, referenceID uuid.UUID) ([]model.StockMovement, error)
}
