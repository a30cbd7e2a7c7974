package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"watchitup-backend/internal/domains/order/model"
)

// =====================================================
// ORDER REPOSITORY INTERFACE
// =====================================================
type OrderRepository interface {
	// Transaction management
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CommitTx(ctx context.Context, tx pgx.Tx) error
	RollbackTx(ctx context.Context, tx pgx.Tx) error

	// Order operations
	CreateOrderWithTx(ctx context.Context, tx pgx.Tx, order *model.Order) error
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error)
	GetOrderByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error)
	GetOrderForUpdateWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*model.Order, error)
	UpdateOrderStatusWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status model.OrderStatus, version int) error
	SetPaymentStatusWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status model.PaymentStatus, paymentRef *string) error
	SetDeliveredAtWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error
	SetCancelledAtWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error
	SetStockReservedWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, reserved bool) error

	// Order items operations
	CreateOrderItemsWithTx(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error
	GetOrderItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error)
	GetOrderItemsForUpdateWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderItem, error)
	UpdateItemStatusWithTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, status model.ItemStatus) error
	UpdateAllItemStatusesWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, from, to model.ItemStatus) error

	// List operations
	ListOrdersByUserID(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]model.Order, int, error)
	ListAllOrders(ctx context.Context, status string, page, limit int) ([]model.Order, int, error)
	CountOrderItemsByOrderID(ctx context.Context, orderID uuid.UUID) (int, error)

	// Cancellations
	CreateCancellationWithTx(ctx context.Context, tx pgx.Tx, c *model.OrderCancellation) error
	SetCancellationRefundStatusWithTx(ctx context.Context, tx pgx.Tx, cancellationID uuid.UUID, status model.RefundStatus) error
	ListCancellationsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderCancellation, error)

	// Returns
	CreateReturnWithTx(ctx context.Context, tx pgx.Tx, ret *model.OrderReturn) error
	GetReturnByID(ctx context.Context, returnID uuid.UUID) (*model.OrderReturn, error)
	GetReturnForUpdateWithTx(ctx context.Context, tx pgx.Tx, returnID uuid.UUID) (*model.OrderReturn, error)
	UpdateReturnWithTx(ctx context.Context, tx pgx.Tx, ret *model.OrderReturn) error
	ListReturnsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderReturn, error)
	ListReturnsByOrderIDWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderReturn, error)

	// Order status history
	CreateOrderStatusHistoryWithTx(ctx context.Context, tx pgx.Tx, history *model.OrderStatusHistory) error
	GetOrderStatusHistory(ctx context.Context, orderID uuid.UUID) ([]model.OrderStatusHistory, error)
}
