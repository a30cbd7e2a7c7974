package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/wallet/model"
	"watchitup-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) WithTx(ctx context.Context, fn database.TxFunc) error {
	return database.WithTransaction(ctx, r.pool, fn)
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Wallet, error) {
	query := `
		SELECT id, user_id, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w model.Wallet
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

func (r *postgresRepository) ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]model.WalletTransaction, error) {
	query := `
		SELECT id, wallet_id, kind, amount, balance_after, description, reference_id, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.WalletTransaction
	for rows.Next() {
		var t model.WalletTransaction
		if err := rows.Scan(
			&t.ID, &t.WalletID, &t.Kind, &t.Amount,
			&t.BalanceAfter, &t.Description, &t.ReferenceID, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wallet transaction: %w", err)
		}
		txns = append(txns, t)
	}

	return txns, rows.Err()
}

// GetOrCreateForUpdateWithTx locks the wallet row (SELECT FOR UPDATE) to
// serialize concurrent credits/debits against the same wallet.
func (r *postgresRepository) GetOrCreateForUpdateWithTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*model.Wallet, error) {
	// Insert-if-absent first so the lock below always finds a row.
	_, err := tx.Exec(ctx, `
		INSERT INTO wallets (id, user_id, balance, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`, uuid.New(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure wallet exists: %w", err)
	}

	var w model.Wallet
	err = tx.QueryRow(ctx, `
		SELECT id, user_id, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}

	return &w, nil
}

func (r *postgresRepository) HasTransactionWithTx(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, kind string, referenceID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM wallet_transactions
			WHERE wallet_id = $1 AND kind = $2 AND reference_id = $3
		)
	`, walletID, kind, referenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate wallet transaction: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) AppendWithTx(ctx context.Context, tx pgx.Tx, txn *model.WalletTransaction) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO wallet_transactions (
			id, wallet_id, kind, amount, balance_after, description, reference_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`, txn.ID, txn.WalletID, txn.Kind, txn.Amount, txn.BalanceAfter, txn.Description, txn.ReferenceID)
	if err != nil {
		return fmt.Errorf("failed to append wallet transaction: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE wallets SET balance = $2, updated_at = NOW() WHERE id = $1
	`, txn.WalletID, txn.BalanceAfter)
	if err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}

	return nil
}
