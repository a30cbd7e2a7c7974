package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	"watchitup-backend/internal/domains/order/model"
	walletModel "watchitup-backend/internal/domains/wallet/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type harness struct {
	repo     *fakeOrderRepo
	inv      *fakeInventory
	wallet   *fakeWallet
	notifier *fakeNotifier
	svc      *orderService
}

func newHarness() *harness {
	repo := newFakeOrderRepo()
	inv := &fakeInventory{}
	wallet := &fakeWallet{}
	notifier := &fakeNotifier{}
	svc := &orderService{
		orderRepo: repo,
		inventory: inv,
		wallet:    wallet,
		notifier:  notifier,
		now:       testClock,
	}
	return &harness{repo: repo, inv: inv, wallet: wallet, notifier: notifier, svc: svc}
}

// seedOrder stores an order whose snapshot totals match the given item
// totals priced at 18% tax with the shipping rules applied by hand.
func (h *harness) seedOrder(userID uuid.UUID, status model.OrderStatus, payStatus model.PaymentStatus, subtotal, tax, shipping, total string, itemTotals ...string) (*model.Order, []model.OrderItem) {
	order := &model.Order{
		ID:             uuid.New(),
		OrderNumber:    model.GenerateOrderNumber(testClock()),
		UserID:         userID,
		Subtotal:       d(subtotal),
		TaxAmount:      d(tax),
		ShippingFee:    d(shipping),
		DiscountAmount: decimal.Zero,
		Total:          d(total),
		PaymentMethod:  model.PaymentMethodCOD,
		PaymentStatus:  payStatus,
		Status:         status,
		StockReserved:  true,
		Version:        1,
		CreatedAt:      testClock(),
	}
	if payStatus == model.PaymentStatusCompleted {
		paidAt := testClock()
		order.PaidAt = &paidAt
	}
	h.repo.orders[order.ID] = order

	items := make([]model.OrderItem, 0, len(itemTotals))
	for _, it := range itemTotals {
		items = append(items, model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   uuid.New(),
			ProductName: "Chronograph",
			Quantity:    1,
			UnitPrice:   d(it),
			ItemTotal:   d(it),
			Status:      model.ItemStatusActive,
		})
	}
	h.repo.items[order.ID] = items
	return order, items
}

func (h *harness) storedOrder(t *testing.T, id uuid.UUID) *model.Order {
	t.Helper()
	o, err := h.repo.GetOrderByID(context.Background(), id)
	require.NoError(t, err)
	return o
}

func (h *harness) storedItems(id uuid.UUID) []model.OrderItem {
	return h.repo.items[id]
}

// =====================================================
// FULL-ORDER CANCELLATION
// =====================================================

func TestCancelOrderRefundsFullPaidTotal(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusConfirmed, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")

	resp, err := h.svc.CancelOrder(context.Background(), order.ID, userID, "changed my mind")
	require.NoError(t, err)

	require.Len(t, h.wallet.credits, 1)
	assert.True(t, h.wallet.credits[0].amount.Equal(d("1180")))
	assert.Equal(t, walletModel.TxKindRefund, h.wallet.credits[0].kind)
	assert.Equal(t, userID, h.wallet.credits[0].userID)

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusCancelled, stored.Status)
	assert.Equal(t, model.PaymentStatusRefunded, stored.PaymentStatus)
	assert.False(t, stored.StockReserved)
	assert.NotNil(t, stored.CancelledAt)

	for _, item := range h.storedItems(order.ID) {
		assert.Equal(t, model.ItemStatusCancelled, item.Status)
	}

	require.Len(t, h.inv.releases, 1)
	assert.Equal(t, order.ID, h.inv.releases[0].referenceID)

	cancellations, err := h.repo.ListCancellationsByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, cancellations, 1)
	assert.Equal(t, model.RefundStatusProcessed, cancellations[0].RefundStatus)
	assert.True(t, cancellations[0].RefundAmount.Equal(d("1180")))

	assert.True(t, resp.ActiveTotal.IsZero())
	require.Len(t, resp.StatusHistory, 1)
	assert.Equal(t, model.OrderStatusCancelled.String(), resp.StatusHistory[0].ToStatus)
}

func TestCancelOrderUnpaidSkipsWallet(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusPending, model.PaymentStatusPending,
		"1000", "180", "0", "1180", "1000")

	_, err := h.svc.CancelOrder(context.Background(), order.ID, userID, "no longer needed")
	require.NoError(t, err)

	assert.Empty(t, h.wallet.credits)

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusCancelled, stored.Status)
	assert.Equal(t, model.PaymentStatusPending, stored.PaymentStatus)

	cancellations, err := h.repo.ListCancellationsByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, cancellations, 1)
	assert.Equal(t, model.RefundStatusNotApplicable, cancellations[0].RefundStatus)
}

func TestCancelOrderRejectsShippedOrder(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusShipped, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")

	_, err := h.svc.CancelOrder(context.Background(), order.ID, userID, "too late")
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeOrderCannotCancel, orderErr.Code)
	assert.Empty(t, h.wallet.credits)
	assert.Equal(t, model.OrderStatusShipped, h.storedOrder(t, order.ID).Status)
}

// =====================================================
// PER-ITEM CANCELLATION
// =====================================================

func TestCancelItemsRefundsLineAndKeepsOrderOpen(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusProcessing, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")

	resp, err := h.svc.CancelItems(context.Background(), order.ID, userID, []uuid.UUID{items[0].ID}, "wrong size")
	require.NoError(t, err)

	require.Len(t, h.wallet.credits, 1)
	assert.True(t, h.wallet.credits[0].amount.Equal(d("200")))

	// The order stays in its lifecycle status; only the view changes.
	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusProcessing, stored.Status)
	assert.True(t, stored.StockReserved)

	assert.Equal(t, model.DisplayPartiallyCancelled, resp.DisplayStatus)
	assert.True(t, resp.ActiveSubtotal.Equal(d("300")), "active subtotal %s", resp.ActiveSubtotal)
	assert.True(t, resp.ActiveTax.Equal(d("54")), "active tax %s", resp.ActiveTax)
	assert.True(t, resp.ActiveShipping.Equal(d("50")), "active shipping %s", resp.ActiveShipping)
	assert.True(t, resp.ActiveTotal.Equal(d("404")), "active total %s", resp.ActiveTotal)

	require.Len(t, h.inv.releases, 1)
	require.Len(t, h.inv.releases[0].lines, 1)
	assert.Equal(t, items[0].ProductID, h.inv.releases[0].lines[0].ProductID)
}

func TestCancelItemsRejectsBatchWithForeignItem(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusProcessing, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")

	_, err := h.svc.CancelItems(context.Background(), order.ID, userID,
		[]uuid.UUID{items[0].ID, uuid.New()}, "mixed batch")
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeItemNotFound, orderErr.Code)

	// The valid half of the batch must not have been applied.
	for _, item := range h.storedItems(order.ID) {
		assert.Equal(t, model.ItemStatusActive, item.Status)
	}
	assert.Empty(t, h.wallet.credits)
	assert.Empty(t, h.inv.releases)
}

func TestCancelItemsCollapsesOrderOnLastActiveItem(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusConfirmed, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")

	_, err := h.svc.CancelItems(context.Background(), order.ID, userID,
		[]uuid.UUID{items[0].ID, items[1].ID}, "full regret, item by item")
	require.NoError(t, err)

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusCancelled, stored.Status)
	assert.NotNil(t, stored.CancelledAt)
	assert.False(t, stored.StockReserved)

	// One refund per line, at each line's own total.
	require.Len(t, h.wallet.credits, 2)
	sum := h.wallet.credits[0].amount.Add(h.wallet.credits[1].amount)
	assert.True(t, sum.Equal(d("500")))
}

// =====================================================
// DELIVERY
// =====================================================

func TestUpdateStatusDeliveredIsIdempotent(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusOutForDelivery, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")

	_, err := h.svc.UpdateStatus(context.Background(), order.ID, model.OrderStatusDelivered, nil, nil)
	require.NoError(t, err)
	stored := h.storedOrder(t, order.ID)
	require.NotNil(t, stored.DeliveredAt)
	deliveredAt := *stored.DeliveredAt
	assert.Equal(t, model.OrderStatusDelivered, stored.Status)

	second, err := h.svc.UpdateStatus(context.Background(), order.ID, model.OrderStatusDelivered, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, second.Status)

	stored = h.storedOrder(t, order.ID)
	assert.True(t, stored.DeliveredAt.Equal(deliveredAt))
	history, err := h.repo.GetOrderStatusHistory(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

// =====================================================
// RETURNS
// =====================================================

func deliveredDaysAgo(h *harness, order *model.Order, days int) {
	deliveredAt := testClock().Add(-time.Duration(days) * 24 * time.Hour)
	h.repo.orders[order.ID].DeliveredAt = &deliveredAt
}

func TestRequestReturnOutsideWindowRejected(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	deliveredDaysAgo(h, order, 8)

	_, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "defective")
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeReturnWindowClosed, orderErr.Code)
	assert.Equal(t, model.OrderStatusDelivered, h.storedOrder(t, order.ID).Status)
}

func TestFullOrderReturnFlow(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	adminID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	deliveredDaysAgo(h, order, 6)

	ret, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "defective")
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusPending, ret.Status)
	assert.True(t, ret.RefundAmount.Equal(d("1180")))
	assert.Equal(t, model.OrderStatusReturnRequested, h.storedOrder(t, order.ID).Status)

	ret, err = h.svc.ApproveReturn(context.Background(), ret.ID, &adminID)
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusApproved, ret.Status)
	assert.Equal(t, model.OrderStatusReturnApproved, h.storedOrder(t, order.ID).Status)
	assert.Empty(t, h.wallet.credits, "approval must not move money")

	ret, err = h.svc.CompleteReturn(context.Background(), ret.ID, &adminID)
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusCompleted, ret.Status)
	assert.Equal(t, model.RefundStatusProcessed, ret.RefundStatus)

	require.Len(t, h.wallet.credits, 1)
	assert.True(t, h.wallet.credits[0].amount.Equal(d("1180")))

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusRefunded, stored.Status)
	assert.Equal(t, model.PaymentStatusRefunded, stored.PaymentStatus)
	for _, item := range h.storedItems(order.ID) {
		assert.Equal(t, model.ItemStatusReturned, item.Status)
	}

	// Restock is keyed to the return, not the order.
	require.Len(t, h.inv.releases, 1)
	assert.Equal(t, ret.ID, h.inv.releases[0].referenceID)
}

func TestCompleteReturnIsIdempotent(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	deliveredDaysAgo(h, order, 2)

	ret, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "defective")
	require.NoError(t, err)
	_, err = h.svc.ApproveReturn(context.Background(), ret.ID, nil)
	require.NoError(t, err)
	_, err = h.svc.CompleteReturn(context.Background(), ret.ID, nil)
	require.NoError(t, err)

	again, err := h.svc.CompleteReturn(context.Background(), ret.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusCompleted, again.Status)

	assert.Len(t, h.wallet.credits, 1)
	assert.Len(t, h.inv.releases, 1)
	assert.Equal(t, model.OrderStatusRefunded, h.storedOrder(t, order.ID).Status)
}

func TestRejectReturnRestoresDeliveredStatus(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	deliveredDaysAgo(h, order, 2)

	ret, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "defective")
	require.NoError(t, err)

	ret, err = h.svc.RejectReturn(context.Background(), ret.ID, "no defect found", nil)
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusRejected, ret.Status)
	assert.Equal(t, model.RefundStatusNotApplicable, ret.RefundStatus)
	require.NotNil(t, ret.RejectionReason)

	assert.Equal(t, model.OrderStatusDelivered, h.storedOrder(t, order.ID).Status)
	assert.Empty(t, h.wallet.credits)
}

func TestSingleItemReturnKeepsOrderDelivered(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")
	deliveredDaysAgo(h, order, 2)

	itemID := items[1].ID
	ret, err := h.svc.RequestReturn(context.Background(), order.ID, userID, &itemID, "scratched")
	require.NoError(t, err)
	assert.True(t, ret.RefundAmount.Equal(d("300")))
	assert.Equal(t, model.OrderStatusDelivered, h.storedOrder(t, order.ID).Status)

	_, err = h.svc.ApproveReturn(context.Background(), ret.ID, nil)
	require.NoError(t, err)
	ret, err = h.svc.CompleteReturn(context.Background(), ret.ID, nil)
	require.NoError(t, err)

	require.Len(t, h.wallet.credits, 1)
	assert.True(t, h.wallet.credits[0].amount.Equal(d("300")))

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusDelivered, stored.Status)
	assert.Equal(t, model.PaymentStatusCompleted, stored.PaymentStatus)

	storedItems := h.storedItems(order.ID)
	assert.Equal(t, model.ItemStatusActive, storedItems[0].Status)
	assert.Equal(t, model.ItemStatusReturned, storedItems[1].Status)
}

func TestRequestReturnRejectsOverlappingRequests(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")
	deliveredDaysAgo(h, order, 2)

	itemID := items[1].ID
	_, err := h.svc.RequestReturn(context.Background(), order.ID, userID, &itemID, "scratched")
	require.NoError(t, err)

	// Same item again: the 300 line must not be claimable twice.
	_, err = h.svc.RequestReturn(context.Background(), order.ID, userID, &itemID, "scratched again")
	require.Error(t, err)
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeReturnAlreadyOpen, orderErr.Code)

	// A whole-order request covers the pending item too.
	_, err = h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "all of it")
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeReturnAlreadyOpen, orderErr.Code)

	// A disjoint item is still fair game.
	otherID := items[0].ID
	_, err = h.svc.RequestReturn(context.Background(), order.ID, userID, &otherID, "wrong strap")
	require.NoError(t, err)

	returns, err := h.repo.ListReturnsByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, returns, 2)
}

func TestRequestReturnRejectedAfterFullOrderRequest(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")
	deliveredDaysAgo(h, order, 2)

	_, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "all of it")
	require.NoError(t, err)

	itemID := items[0].ID
	_, err = h.svc.RequestReturn(context.Background(), order.ID, userID, &itemID, "just this one")
	require.Error(t, err)
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeReturnAlreadyOpen, orderErr.Code)
}

func TestCompleteReturnSettlesOnFlippedLinesOnly(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"500", "90", "50", "640", "200", "300")
	deliveredDaysAgo(h, order, 2)

	// An approved request whose item was already returned through another
	// record: the quoted amount is stale and must not be paid out.
	h.repo.items[order.ID][1].Status = model.ItemStatusReturned
	itemID := items[1].ID
	stale := &model.OrderReturn{
		ID:           uuid.New(),
		OrderID:      order.ID,
		ItemID:       &itemID,
		Reason:       "scratched",
		Status:       model.ReturnStatusApproved,
		RefundAmount: d("300"),
		RefundStatus: model.RefundStatusPending,
	}
	h.repo.returns[stale.ID] = stale

	ret, err := h.svc.CompleteReturn(context.Background(), stale.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusCompleted, ret.Status)
	assert.Equal(t, model.RefundStatusNotApplicable, ret.RefundStatus)
	assert.True(t, ret.RefundAmount.IsZero(), "settled %s", ret.RefundAmount)

	assert.Empty(t, h.wallet.credits)
	assert.Empty(t, h.inv.releases)
}

func TestCompleteReturnFromPendingRequest(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	adminID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	deliveredDaysAgo(h, order, 2)

	ret, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "defective")
	require.NoError(t, err)

	// Completing straight from the request approves and settles in one
	// step; the money still moves exactly once.
	ret, err = h.svc.CompleteReturn(context.Background(), ret.ID, &adminID)
	require.NoError(t, err)
	assert.Equal(t, model.ReturnStatusCompleted, ret.Status)
	assert.Equal(t, model.RefundStatusProcessed, ret.RefundStatus)
	assert.True(t, ret.RefundAmount.Equal(d("1180")))

	require.Len(t, h.wallet.credits, 1)
	assert.True(t, h.wallet.credits[0].amount.Equal(d("1180")))

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusRefunded, stored.Status)
	assert.Equal(t, model.PaymentStatusRefunded, stored.PaymentStatus)
}

func TestCompleteReturnRejectsRejectedRequest(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusDelivered, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	deliveredDaysAgo(h, order, 2)

	ret, err := h.svc.RequestReturn(context.Background(), order.ID, userID, nil, "defective")
	require.NoError(t, err)
	_, err = h.svc.RejectReturn(context.Background(), ret.ID, "no defect found", nil)
	require.NoError(t, err)

	_, err = h.svc.CompleteReturn(context.Background(), ret.ID, nil)
	require.Error(t, err)
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeReturnNotApproved, orderErr.Code)
	assert.Empty(t, h.wallet.credits)
}

// =====================================================
// REACTIVATION
// =====================================================

func cancelSeededOrder(h *harness, order *model.Order) {
	h.repo.orders[order.ID].Status = model.OrderStatusCancelled
	h.repo.orders[order.ID].StockReserved = false
	cancelledAt := testClock()
	h.repo.orders[order.ID].CancelledAt = &cancelledAt
	for i := range h.repo.items[order.ID] {
		h.repo.items[order.ID][i].Status = model.ItemStatusCancelled
	}
}

func TestReactivateRestoresItemsAndStock(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	adminID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusConfirmed, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	cancelSeededOrder(h, order)

	resp, err := h.svc.Reactivate(context.Background(), order.ID, model.OrderStatusProcessing, &adminID)
	require.NoError(t, err)

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusProcessing, stored.Status)
	assert.True(t, stored.StockReserved)
	for _, item := range h.storedItems(order.ID) {
		assert.Equal(t, model.ItemStatusActive, item.Status)
	}

	require.Len(t, h.inv.reserves, 1)
	assert.Equal(t, order.ID, h.inv.reserves[0].referenceID)
	assert.True(t, resp.ActiveTotal.Equal(d("1180")))
}

func TestReactivateFailsWhenStockGone(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, items := h.seedOrder(userID, model.OrderStatusConfirmed, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	cancelSeededOrder(h, order)
	h.inv.failReserve = inventoryModel.NewInsufficientStockError(items[0].ProductID, nil, 1, 0)

	_, err := h.svc.Reactivate(context.Background(), order.ID, model.OrderStatusProcessing, nil)
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeInsufficientStock, orderErr.Code)

	var stockErr *inventoryModel.InsufficientStockError
	assert.True(t, errors.As(err, &stockErr))

	stored := h.storedOrder(t, order.ID)
	assert.Equal(t, model.OrderStatusCancelled, stored.Status)
	assert.False(t, stored.StockReserved)
	for _, item := range h.storedItems(order.ID) {
		assert.Equal(t, model.ItemStatusCancelled, item.Status)
	}
}

func TestReactivateRejectsTerminalTarget(t *testing.T) {
	h := newHarness()
	userID := uuid.New()
	order, _ := h.seedOrder(userID, model.OrderStatusConfirmed, model.PaymentStatusCompleted,
		"1000", "180", "0", "1180", "1000")
	cancelSeededOrder(h, order)

	_, err := h.svc.Reactivate(context.Background(), order.ID, model.OrderStatusDelivered, nil)
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeCannotReactivate, orderErr.Code)
}
