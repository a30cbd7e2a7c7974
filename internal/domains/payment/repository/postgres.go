package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/payment/model"
)

type paymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{db: db}
}

const intentColumns = `id, order_id, gateway_intent_id, amount, currency, status, gateway_payment_id, created_at, updated_at`

func scanIntent(row pgx.Row) (*model.PaymentIntent, error) {
	var in model.PaymentIntent
	err := row.Scan(
		&in.ID, &in.OrderID, &in.GatewayIntentID, &in.Amount, &in.Currency,
		&in.Status, &in.GatewayPayment, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrIntentNotFound
		}
		return nil, fmt.Errorf("failed to scan payment intent: %w", err)
	}
	return &in, nil
}

func (r *paymentRepository) CreateIntentWithTx(ctx context.Context, tx pgx.Tx, intent *model.PaymentIntent) error {
	query := `
		INSERT INTO payment_intents (id, order_id, gateway_intent_id, amount, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		intent.ID, intent.OrderID, intent.GatewayIntentID,
		intent.Amount, intent.Currency, intent.Status,
	).Scan(&intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment intent: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetIntentByGatewayID(ctx context.Context, gatewayIntentID string) (*model.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE gateway_intent_id = $1`
	return scanIntent(r.db.QueryRow(ctx, query, gatewayIntentID))
}

func (r *paymentRepository) GetIntentForUpdateWithTx(ctx context.Context, tx pgx.Tx, gatewayIntentID string) (*model.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE gateway_intent_id = $1 FOR UPDATE`
	return scanIntent(tx.QueryRow(ctx, query, gatewayIntentID))
}

func (r *paymentRepository) ResolveIntentWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.IntentStatus, gatewayPaymentID *string) error {
	query := `
		UPDATE payment_intents
		SET status = $2, gateway_payment_id = $3, updated_at = NOW()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status, gatewayPaymentID)
	if err != nil {
		return fmt.Errorf("failed to resolve payment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrIntentNotFound
	}
	return nil
}

func (r *paymentRepository) ListIntentsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*model.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE order_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment intents: %w", err)
	}
	defer rows.Close()

	var intents []*model.PaymentIntent
	for rows.Next() {
		in, err := scanIntent(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, in)
	}
	return intents, rows.Err()
}
