package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"watchitup-backend/internal/domains/wallet/model"
	"watchitup-backend/pkg/database"
)

type RepositoryInterface interface {
	// WithTx runs fn in its own transaction. Used by wallet operations
	// that are not part of a larger order transaction.
	WithTx(ctx context.Context, fn database.TxFunc) error

	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Wallet, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]model.WalletTransaction, error)

	// GetOrCreateForUpdateWithTx locks the wallet row for the duration of
	// the caller's transaction, creating the wallet on first use.
	GetOrCreateForUpdateWithTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*model.Wallet, error)

	// HasTransactionWithTx reports whether a transaction with the same
	// kind and reference already exists (duplicate-refund guard).
	HasTransactionWithTx(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, kind string, referenceID uuid.UUID) (bool, error)

	// AppendWithTx inserts the ledger entry and updates the cached
	// balance in one step.
	AppendWithTx(ctx context.Context, tx pgx.Tx, txn *model.WalletTransaction) error
}
