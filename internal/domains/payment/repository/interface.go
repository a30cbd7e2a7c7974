package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"watchitup-backend/internal/domains/payment/model"
)

// PaymentRepository persists payment intents. All writes ride the order
// transaction so intent state never drifts from order payment state.
type PaymentRepository interface {
	CreateIntentWithTx(ctx context.Context, tx pgx.Tx, intent *model.PaymentIntent) error
	GetIntentByGatewayID(ctx context.Context, gatewayIntentID string) (*model.PaymentIntent, error)
	GetIntentForUpdateWithTx(ctx context.Context, tx pgx.Tx, gatewayIntentID string) (*model.PaymentIntent, error)
	ResolveIntentWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.IntentStatus, gatewayPaymentID *string) error
	ListIntentsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*model.PaymentIntent, error)
}
