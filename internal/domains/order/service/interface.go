package service

import (
	"context"

	"github.com/google/uuid"

	"watchitup-backend/internal/domains/order/model"
)

// OrderService drives the whole order lifecycle: placement, status
// transitions, cancellation, the two-phase return flow, and reactivation.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req model.PlaceOrderRequest) (*model.OrderResponse, error)

	GetOrderDetail(ctx context.Context, orderID, userID uuid.UUID) (*model.OrderResponse, error)
	ListOrders(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]model.OrderListResponse, int, error)
	ListAllOrders(ctx context.Context, status string, page, limit int) ([]model.OrderListResponse, int, error)

	// UpdateStatus moves the order along the lifecycle lattice. Marking
	// a delivered order delivered again is a no-op, not an error.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus model.OrderStatus, changedBy *uuid.UUID, notes *string) (*model.Order, error)

	// CancelOrder cancels every active item, releases reserved stock and
	// credits the refund for paid orders.
	CancelOrder(ctx context.Context, orderID, userID uuid.UUID, reason string) (*model.OrderResponse, error)

	// CancelItems cancels a subset of lines. All requested items must
	// belong to the order and be active, or nothing changes.
	CancelItems(ctx context.Context, orderID, userID uuid.UUID, itemIDs []uuid.UUID, reason string) (*model.OrderResponse, error)

	// RequestReturn opens a return for the whole order or a single item.
	// Only delivered orders inside the return window qualify.
	RequestReturn(ctx context.Context, orderID, userID uuid.UUID, itemID *uuid.UUID, reason string) (*model.OrderReturn, error)

	// ApproveReturn and RejectReturn resolve a pending request. Neither
	// moves money.
	ApproveReturn(ctx context.Context, returnID uuid.UUID, changedBy *uuid.UUID) (*model.OrderReturn, error)
	RejectReturn(ctx context.Context, returnID uuid.UUID, reason string, changedBy *uuid.UUID) (*model.OrderReturn, error)

	// CompleteReturn finishes an approved return: items flip to
	// returned, stock goes back, and the refund is credited. Calling it
	// again on a completed return is a no-op.
	CompleteReturn(ctx context.Context, returnID uuid.UUID, changedBy *uuid.UUID) (*model.OrderReturn, error)

	// Reactivate moves a cancelled order back into the forward flow,
	// re-reserving stock for every item all-or-nothing.
	Reactivate(ctx context.Context, orderID uuid.UUID, target model.OrderStatus, changedBy *uuid.UUID) (*model.OrderResponse, error)
}
