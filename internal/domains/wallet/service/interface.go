package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/domains/wallet/model"
)

// ServiceInterface is the wallet ledger. Credit and Debit run inside the
// caller's transaction so wallet movement commits atomically with the
// order transition that caused it.
type ServiceInterface interface {
	Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal, kind, description string, referenceID uuid.UUID) (decimal.Decimal, error)
	Debit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal, kind, description string, referenceID uuid.UUID) (decimal.Decimal, error)

	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.WalletTransaction, error)

	// Adjust is a manual admin correction in its own transaction.
	// Positive amounts credit, negative amounts debit.
	Adjust(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (decimal.Decimal, error)
}
