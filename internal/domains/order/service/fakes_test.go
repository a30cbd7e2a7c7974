package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	"watchitup-backend/internal/domains/order/model"
	walletModel "watchitup-backend/internal/domains/wallet/model"
)

// testClock is the frozen time every fake writes into timestamps.
func testClock() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

// =====================================================
// IN-MEMORY ORDER REPOSITORY
// =====================================================

// fakeOrderRepo applies writes immediately; transaction handles are
// ignored. Good enough for service-level scenarios that never exercise
// rollback.
type fakeOrderRepo struct {
	orders        map[uuid.UUID]*model.Order
	items         map[uuid.UUID][]model.OrderItem // by order ID
	cancellations map[uuid.UUID]*model.OrderCancellation
	returns       map[uuid.UUID]*model.OrderReturn
	history       map[uuid.UUID][]model.OrderStatusHistory // by order ID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:        make(map[uuid.UUID]*model.Order),
		items:         make(map[uuid.UUID][]model.OrderItem),
		cancellations: make(map[uuid.UUID]*model.OrderCancellation),
		returns:       make(map[uuid.UUID]*model.OrderReturn),
		history:       make(map[uuid.UUID][]model.OrderStatusHistory),
	}
}

func (f *fakeOrderRepo) BeginTx(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (f *fakeOrderRepo) CommitTx(ctx context.Context, tx pgx.Tx) error { return nil }
func (f *fakeOrderRepo) RollbackTx(ctx context.Context, tx pgx.Tx) error { return nil }

func (f *fakeOrderRepo) CreateOrderWithTx(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetOrderByIDAndUserID(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error) {
	o, err := f.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, model.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) GetOrderForUpdateWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*model.Order, error) {
	return f.GetOrderByID(ctx, orderID)
}

func (f *fakeOrderRepo) UpdateOrderStatusWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status model.OrderStatus, version int) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	if o.Version != version {
		return model.ErrVersionMismatch
	}
	o.Status = status
	o.Version++
	return nil
}

func (f *fakeOrderRepo) SetPaymentStatusWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, status model.PaymentStatus, paymentRef *string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	o.PaymentStatus = status
	if paymentRef != nil {
		o.PaymentRef = paymentRef
	}
	if status == model.PaymentStatusCompleted && o.PaidAt == nil {
		now := testClock()
		o.PaidAt = &now
	}
	return nil
}

func (f *fakeOrderRepo) SetDeliveredAtWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	if o.DeliveredAt == nil {
		now := testClock()
		o.DeliveredAt = &now
	}
	return nil
}

func (f *fakeOrderRepo) SetCancelledAtWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	if o.CancelledAt == nil {
		now := testClock()
		o.CancelledAt = &now
	}
	return nil
}

func (f *fakeOrderRepo) SetStockReservedWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, reserved bool) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	o.StockReserved = reserved
	return nil
}

func (f *fakeOrderRepo) CreateOrderItemsWithTx(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	for _, item := range items {
		f.items[item.OrderID] = append(f.items[item.OrderID], item)
	}
	return nil
}

func (f *fakeOrderRepo) GetOrderItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	out := make([]model.OrderItem, len(f.items[orderID]))
	copy(out, f.items[orderID])
	return out, nil
}

func (f *fakeOrderRepo) GetOrderItemsForUpdateWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderItem, error) {
	return f.GetOrderItemsByOrderID(ctx, orderID)
}

func (f *fakeOrderRepo) UpdateItemStatusWithTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, status model.ItemStatus) error {
	for orderID, items := range f.items {
		for i := range items {
			if items[i].ID == itemID {
				f.items[orderID][i].Status = status
				return nil
			}
		}
	}
	return model.ErrItemNotFound
}

func (f *fakeOrderRepo) UpdateAllItemStatusesWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, from, to model.ItemStatus) error {
	items := f.items[orderID]
	for i := range items {
		if items[i].Status == from {
			items[i].Status = to
		}
	}
	return nil
}

func (f *fakeOrderRepo) ListOrdersByUserID(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]model.Order, int, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.UserID == userID && (status == "" || o.Status.String() == status) {
			out = append(out, *o)
		}
	}
	return out, len(out), nil
}

func (f *fakeOrderRepo) ListAllOrders(ctx context.Context, status string, page, limit int) ([]model.Order, int, error) {
	var out []model.Order
	for _, o := range f.orders {
		if status == "" || o.Status.String() == status {
			out = append(out, *o)
		}
	}
	return out, len(out), nil
}

func (f *fakeOrderRepo) CountOrderItemsByOrderID(ctx context.Context, orderID uuid.UUID) (int, error) {
	return len(f.items[orderID]), nil
}

func (f *fakeOrderRepo) CreateCancellationWithTx(ctx context.Context, tx pgx.Tx, c *model.OrderCancellation) error {
	cp := *c
	f.cancellations[c.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) SetCancellationRefundStatusWithTx(ctx context.Context, tx pgx.Tx, cancellationID uuid.UUID, status model.RefundStatus) error {
	c, ok := f.cancellations[cancellationID]
	if !ok {
		return fmt.Errorf("cancellation %s not found", cancellationID)
	}
	c.RefundStatus = status
	return nil
}

func (f *fakeOrderRepo) ListCancellationsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderCancellation, error) {
	var out []model.OrderCancellation
	for _, c := range f.cancellations {
		if c.OrderID == orderID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CreateReturnWithTx(ctx context.Context, tx pgx.Tx, ret *model.OrderReturn) error {
	cp := *ret
	f.returns[ret.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetReturnByID(ctx context.Context, returnID uuid.UUID) (*model.OrderReturn, error) {
	r, ok := f.returns[returnID]
	if !ok {
		return nil, model.ErrReturnNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeOrderRepo) GetReturnForUpdateWithTx(ctx context.Context, tx pgx.Tx, returnID uuid.UUID) (*model.OrderReturn, error) {
	return f.GetReturnByID(ctx, returnID)
}

func (f *fakeOrderRepo) UpdateReturnWithTx(ctx context.Context, tx pgx.Tx, ret *model.OrderReturn) error {
	cp := *ret
	f.returns[ret.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) ListReturnsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderReturn, error) {
	var out []model.OrderReturn
	for _, r := range f.returns {
		if r.OrderID == orderID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListReturnsByOrderIDWithTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderReturn, error) {
	return f.ListReturnsByOrderID(ctx, orderID)
}

func (f *fakeOrderRepo) CreateOrderStatusHistoryWithTx(ctx context.Context, tx pgx.Tx, h *model.OrderStatusHistory) error {
	f.history[h.OrderID] = append(f.history[h.OrderID], *h)
	return nil
}

func (f *fakeOrderRepo) GetOrderStatusHistory(ctx context.Context, orderID uuid.UUID) ([]model.OrderStatusHistory, error) {
	return f.history[orderID], nil
}

// =====================================================
// FAKE COLLABORATORS
// =====================================================

type stockCall struct {
	lines       []inventoryModel.Line
	referenceID uuid.UUID
}

type fakeInventory struct {
	reserves    []stockCall
	releases    []stockCall
	failReserve error
}

func (f *fakeInventory) Reserve(ctx context.Context, tx pgx.Tx, lines []inventoryModel.Line, referenceID uuid.UUID) error {
	if f.failReserve != nil {
		return f.failReserve
	}
	f.reserves = append(f.reserves, stockCall{lines: lines, referenceID: referenceID})
	return nil
}

func (f *fakeInventory) Release(ctx context.Context, tx pgx.Tx, lines []inventoryModel.Line, referenceID uuid.UUID) error {
	f.releases = append(f.releases, stockCall{lines: lines, referenceID: referenceID})
	return nil
}

func (f *fakeInventory) CheckAvailability(ctx context.Context, lines []inventoryModel.Line) error {
	return nil
}

func (f *fakeInventory) Movements(ctx context.Context, referenceID uuid.UUID) ([]inventoryModel.StockMovement, error) {
	return nil, nil
}

type walletCredit struct {
	userID      uuid.UUID
	amount      decimal.Decimal
	kind        string
	referenceID uuid.UUID
}

type fakeWallet struct {
	credits []walletCredit
}

func (f *fakeWallet) Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal, kind, description string, referenceID uuid.UUID) (decimal.Decimal, error) {
	for _, c := range f.credits {
		if c.kind == kind && c.referenceID == referenceID {
			return decimal.Zero, walletModel.ErrDuplicateReference
		}
	}
	f.credits = append(f.credits, walletCredit{userID: userID, amount: amount, kind: kind, referenceID: referenceID})
	return amount, nil
}

func (f *fakeWallet) Debit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal, kind, description string, referenceID uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeWallet) Adjust(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeWallet) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range f.credits {
		if c.userID == userID {
			total = total.Add(c.amount)
		}
	}
	return total, nil
}

func (f *fakeWallet) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]walletModel.WalletTransaction, error) {
	return nil, nil
}

type notifierEvent struct {
	userID uuid.UUID
	kind   string
}

type fakeNotifier struct {
	events []notifierEvent
}

func (f *fakeNotifier) Notify(ctx context.Context, userID uuid.UUID, eventKind string, payload map[string]interface{}) {
	f.events = append(f.events, notifierEvent{userID: userID, kind: eventKind})
}
