package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	notification "watchitup-backend/internal/domains/notification/service"
	"watchitup-backend/internal/domains/order/model"
	walletModel "watchitup-backend/internal/domains/wallet/model"
	"watchitup-backend/pkg/logger"
)

// =====================================================
// CANCELLATION
// =====================================================

func (s *orderService) CancelOrder(ctx context.Context, orderID, userID uuid.UUID, reason string) (*model.OrderResponse, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, model.NewOrderError(model.ErrCodeUnauthorized, "Order does not belong to user", model.ErrUnauthorized)
	}
	if !order.CanBeCancelled() {
		return nil, model.NewOrderError(model.ErrCodeOrderCannotCancel, "Order cannot be cancelled", model.ErrOrderCannotCancel)
	}

	items, err := s.orderRepo.GetOrderItemsForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	activeItems := filterActive(items)
	// Refund the live total of what is being cancelled, not the stored
	// snapshot: earlier per-item cancellations already got their money.
	refundAmount := model.RefundableAmount(items, order.DiscountAmount)

	if err := s.orderRepo.UpdateAllItemStatusesWithTx(ctx, tx, orderID, model.ItemStatusActive, model.ItemStatusCancelled); err != nil {
		return nil, err
	}

	if err := model.CanTransition(order.Status, model.OrderStatusCancelled); err != nil {
		return nil, model.NewOrderError(model.ErrCodeInvalidStatus, "Invalid status transition", err)
	}
	if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, orderID, model.OrderStatusCancelled, order.Version); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetCancelledAtWithTx(ctx, tx, orderID); err != nil {
		return nil, err
	}

	if order.StockReserved && len(activeItems) > 0 {
		if err := s.inventory.Release(ctx, tx, linesForItems(activeItems), orderID); err != nil {
			return nil, err
		}
		if err := s.orderRepo.SetStockReservedWithTx(ctx, tx, orderID, false); err != nil {
			return nil, err
		}
	}

	cancellation := &model.OrderCancellation{
		ID:           uuid.New(),
		OrderID:      orderID,
		Type:         model.CancellationFullOrder,
		Reason:       reason,
		RefundAmount: refundAmount,
		RefundStatus: model.RefundStatusPending,
	}
	if err := s.orderRepo.CreateCancellationWithTx(ctx, tx, cancellation); err != nil {
		return nil, err
	}

	refundStatus, err := s.creditRefund(ctx, tx, order, refundAmount,
		fmt.Sprintf("Refund for cancelled order %s", order.OrderNumber), cancellation.ID)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetCancellationRefundStatusWithTx(ctx, tx, cancellation.ID, refundStatus); err != nil {
		return nil, err
	}
	if refundStatus == model.RefundStatusProcessed {
		if err := s.orderRepo.SetPaymentStatusWithTx(ctx, tx, orderID, model.PaymentStatusRefunded, nil); err != nil {
			return nil, err
		}
	}

	if err := s.recordHistory(ctx, tx, orderID, &order.Status, model.OrderStatusCancelled, &userID, &reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Notify(ctx, userID, notification.EventOrderCancelled, map[string]interface{}{
		"order_id":      orderID.String(),
		"refund_amount": refundAmount.String(),
	})

	return s.GetOrderDetail(ctx, orderID, userID)
}

func (s *orderService) CancelItems(ctx context.Context, orderID, userID uuid.UUID, itemIDs []uuid.UUID, reason string) (*model.OrderResponse, error) {
	if len(itemIDs) == 0 {
		return nil, model.NewOrderError(model.ErrCodeItemNotFound, "No items given", model.ErrItemNotFound)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, model.NewOrderError(model.ErrCodeUnauthorized, "Order does not belong to user", model.ErrUnauthorized)
	}
	if !order.CanBeCancelled() {
		return nil, model.NewOrderError(model.ErrCodeOrderCannotCancel, "Order cannot be cancelled", model.ErrOrderCannotCancel)
	}

	items, err := s.orderRepo.GetOrderItemsForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	// Validate the whole batch before touching anything: every requested
	// item must belong to this order and still be active.
	byID := make(map[uuid.UUID]*model.OrderItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	targets := make([]*model.OrderItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, ok := byID[id]
		if !ok {
			return nil, model.NewOrderError(model.ErrCodeItemNotFound,
				fmt.Sprintf("Item %s does not belong to order", id), model.ErrItemNotFound)
		}
		if !item.IsActive() {
			return nil, model.NewOrderError(model.ErrCodeItemNotActive,
				fmt.Sprintf("Item %s is not active", id), model.ErrItemNotActive)
		}
		targets = append(targets, item)
	}

	for _, item := range targets {
		if err := s.orderRepo.UpdateItemStatusWithTx(ctx, tx, item.ID, model.ItemStatusCancelled); err != nil {
			return nil, err
		}

		if order.StockReserved {
			line := []inventoryModel.Line{{ProductID: item.ProductID, VariantID: item.VariantID, Quantity: item.Quantity}}
			if err := s.inventory.Release(ctx, tx, line, orderID); err != nil {
				return nil, err
			}
		}

		itemID := item.ID
		cancellation := &model.OrderCancellation{
			ID:           uuid.New(),
			OrderID:      orderID,
			ItemID:       &itemID,
			Type:         model.CancellationSingleItem,
			Reason:       reason,
			RefundAmount: item.ItemTotal,
			RefundStatus: model.RefundStatusPending,
		}
		if err := s.orderRepo.CreateCancellationWithTx(ctx, tx, cancellation); err != nil {
			return nil, err
		}

		refundStatus, err := s.creditRefund(ctx, tx, order, item.ItemTotal,
			fmt.Sprintf("Refund for cancelled item in order %s", order.OrderNumber), cancellation.ID)
		if err != nil {
			return nil, err
		}
		if err := s.orderRepo.SetCancellationRefundStatusWithTx(ctx, tx, cancellation.ID, refundStatus); err != nil {
			return nil, err
		}
	}

	// Cancelling the last active items collapses the whole order.
	remaining := len(filterActive(items)) - len(targets)
	if remaining == 0 {
		if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, orderID, model.OrderStatusCancelled, order.Version); err != nil {
			return nil, err
		}
		if err := s.orderRepo.SetCancelledAtWithTx(ctx, tx, orderID); err != nil {
			return nil, err
		}
		if order.StockReserved {
			if err := s.orderRepo.SetStockReservedWithTx(ctx, tx, orderID, false); err != nil {
				return nil, err
			}
		}
		if err := s.recordHistory(ctx, tx, orderID, &order.Status, model.OrderStatusCancelled, &userID, &reason); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Notify(ctx, userID, notification.EventOrderCancelled, map[string]interface{}{
		"order_id":   orderID.String(),
		"item_count": len(targets),
	})

	return s.GetOrderDetail(ctx, orderID, userID)
}

// =====================================================
// RETURNS (TWO-PHASE)
// =====================================================

func (s *orderService) RequestReturn(ctx context.Context, orderID, userID uuid.UUID, itemID *uuid.UUID, reason string) (*model.OrderReturn, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, model.NewOrderError(model.ErrCodeUnauthorized, "Order does not belong to user", model.ErrUnauthorized)
	}
	if !order.CanRequestReturn(s.now()) {
		return nil, model.NewOrderError(model.ErrCodeReturnWindowClosed, "Return window has closed", model.ErrReturnWindowClosed)
	}

	// The same goods must never be claimable through two return records
	// at once: reject any request that overlaps an open one.
	existing, err := s.orderRepo.ListReturnsByOrderIDWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].IsOpen() && existing[i].Overlaps(itemID) {
			return nil, model.NewOrderError(model.ErrCodeReturnAlreadyOpen,
				"An open return request already covers these items", model.ErrReturnAlreadyOpen)
		}
	}

	items, err := s.orderRepo.GetOrderItemsForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	var refundAmount decimal.Decimal
	if itemID != nil {
		item := findItem(items, *itemID)
		if item == nil {
			return nil, model.NewOrderError(model.ErrCodeItemNotFound, "Item does not belong to order", model.ErrItemNotFound)
		}
		if !item.IsActive() {
			return nil, model.NewOrderError(model.ErrCodeItemNotActive, "Item is not active", model.ErrItemNotActive)
		}
		refundAmount = item.ItemTotal
	} else {
		refundAmount = model.RefundableAmount(items, order.DiscountAmount)
	}

	refundStatus := model.RefundStatusNotApplicable
	if order.IsPaid() {
		refundStatus = model.RefundStatusPending
	}

	ret := &model.OrderReturn{
		ID:           uuid.New(),
		OrderID:      orderID,
		ItemID:       itemID,
		Reason:       reason,
		Status:       model.ReturnStatusPending,
		RefundAmount: refundAmount,
		RefundStatus: refundStatus,
	}
	if err := s.orderRepo.CreateReturnWithTx(ctx, tx, ret); err != nil {
		return nil, err
	}

	// A whole-order return moves the order itself; item-level returns
	// leave the order delivered.
	if itemID == nil {
		if err := model.CanTransition(order.Status, model.OrderStatusReturnRequested); err != nil {
			return nil, model.NewOrderError(model.ErrCodeInvalidStatus, "Invalid status transition", err)
		}
		if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, orderID, model.OrderStatusReturnRequested, order.Version); err != nil {
			return nil, err
		}
		if err := s.recordHistory(ctx, tx, orderID, &order.Status, model.OrderStatusReturnRequested, &userID, &reason); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Notify(ctx, userID, notification.EventReturnRequested, map[string]interface{}{
		"order_id":  orderID.String(),
		"return_id": ret.ID.String(),
	})

	return ret, nil
}

func (s *orderService) ApproveReturn(ctx context.Context, returnID uuid.UUID, changedBy *uuid.UUID) (*model.OrderReturn, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	ret, err := s.orderRepo.GetReturnForUpdateWithTx(ctx, tx, returnID)
	if err != nil {
		return nil, err
	}
	if ret.Status != model.ReturnStatusPending {
		return nil, model.NewOrderError(model.ErrCodeReturnNotPending, "Return request is not pending", model.ErrReturnNotPending)
	}

	ret.Status = model.ReturnStatusApproved
	if err := s.orderRepo.UpdateReturnWithTx(ctx, tx, ret); err != nil {
		return nil, err
	}

	// Approval moves the order but never money; the refund waits for
	// completion.
	if ret.ItemID == nil {
		order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, ret.OrderID)
		if err != nil {
			return nil, err
		}
		if err := model.CanTransition(order.Status, model.OrderStatusReturnApproved); err != nil {
			return nil, model.NewOrderError(model.ErrCodeInvalidStatus, "Invalid status transition", err)
		}
		if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, ret.OrderID, model.OrderStatusReturnApproved, order.Version); err != nil {
			return nil, err
		}
		if err := s.recordHistory(ctx, tx, ret.OrderID, &order.Status, model.OrderStatusReturnApproved, changedBy, nil); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return ret, nil
}

func (s *orderService) RejectReturn(ctx context.Context, returnID uuid.UUID, reason string, changedBy *uuid.UUID) (*model.OrderReturn, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	ret, err := s.orderRepo.GetReturnForUpdateWithTx(ctx, tx, returnID)
	if err != nil {
		return nil, err
	}
	if ret.Status != model.ReturnStatusPending {
		return nil, model.NewOrderError(model.ErrCodeReturnNotPending, "Return request is not pending", model.ErrReturnNotPending)
	}

	ret.Status = model.ReturnStatusRejected
	ret.RejectionReason = &reason
	ret.RefundStatus = model.RefundStatusNotApplicable
	if err := s.orderRepo.UpdateReturnWithTx(ctx, tx, ret); err != nil {
		return nil, err
	}

	// Rejected whole-order returns put the order back to delivered.
	if ret.ItemID == nil {
		order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, ret.OrderID)
		if err != nil {
			return nil, err
		}
		if order.Status == model.OrderStatusReturnRequested {
			if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, ret.OrderID, model.OrderStatusDelivered, order.Version); err != nil {
				return nil, err
			}
			if err := s.recordHistory(ctx, tx, ret.OrderID, &order.Status, model.OrderStatusDelivered, changedBy, &reason); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifyReturnResolved(ctx, ret)
	return ret, nil
}

func (s *orderService) CompleteReturn(ctx context.Context, returnID uuid.UUID, changedBy *uuid.UUID) (*model.OrderReturn, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	ret, err := s.orderRepo.GetReturnForUpdateWithTx(ctx, tx, returnID)
	if err != nil {
		return nil, err
	}

	// Completing twice is a no-op: the wallet's duplicate-reference
	// guard backs this up even under concurrent calls.
	if ret.Status == model.ReturnStatusCompleted {
		return ret, nil
	}
	// Completing straight from a pending request approves and settles in
	// one step; only rejected returns are off the table.
	if ret.Status != model.ReturnStatusApproved && ret.Status != model.ReturnStatusPending {
		return nil, model.NewOrderError(model.ErrCodeReturnNotApproved, "Return request cannot be completed", model.ErrReturnNotApproved)
	}

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, ret.OrderID)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.GetOrderItemsForUpdateWithTx(ctx, tx, ret.OrderID)
	if err != nil {
		return nil, err
	}

	// Flip items and restock them.
	var returnedLines []model.OrderItem
	if ret.ItemID != nil {
		item := findItem(items, *ret.ItemID)
		if item == nil {
			return nil, model.NewOrderError(model.ErrCodeItemNotFound, "Item does not belong to order", model.ErrItemNotFound)
		}
		if item.IsActive() {
			if err := s.orderRepo.UpdateItemStatusWithTx(ctx, tx, item.ID, model.ItemStatusReturned); err != nil {
				return nil, err
			}
			returnedLines = append(returnedLines, *item)
		}
	} else {
		returnedLines = filterActive(items)
		if err := s.orderRepo.UpdateAllItemStatusesWithTx(ctx, tx, ret.OrderID, model.ItemStatusActive, model.ItemStatusReturned); err != nil {
			return nil, err
		}
	}

	if len(returnedLines) > 0 {
		if err := s.inventory.Release(ctx, tx, linesForItems(returnedLines), ret.ID); err != nil {
			return nil, err
		}
	}

	// Settle on the lines actually flipped in this call, not the amount
	// quoted at request time: items may have changed state since.
	refundAmount := decimal.Zero
	if len(returnedLines) > 0 {
		if ret.ItemID != nil {
			refundAmount = returnedLines[0].ItemTotal
		} else {
			refundAmount = model.RefundableAmount(returnedLines, order.DiscountAmount)
		}
	}

	refundStatus, err := s.creditRefund(ctx, tx, order, refundAmount,
		fmt.Sprintf("Refund for return on order %s", order.OrderNumber), ret.ID)
	if err != nil {
		return nil, err
	}

	ret.Status = model.ReturnStatusCompleted
	ret.RefundAmount = refundAmount
	ret.RefundStatus = refundStatus
	if err := s.orderRepo.UpdateReturnWithTx(ctx, tx, ret); err != nil {
		return nil, err
	}

	// A whole-order return walks the tail of the lattice; a refunded one
	// ends at refunded.
	if ret.ItemID == nil {
		version := order.Version
		if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, ret.OrderID, model.OrderStatusReturned, version); err != nil {
			return nil, err
		}
		if err := s.recordHistory(ctx, tx, ret.OrderID, &order.Status, model.OrderStatusReturned, changedBy, nil); err != nil {
			return nil, err
		}

		if refundStatus == model.RefundStatusProcessed {
			from := model.OrderStatusReturned
			if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, ret.OrderID, model.OrderStatusRefunded, version+1); err != nil {
				return nil, err
			}
			if err := s.orderRepo.SetPaymentStatusWithTx(ctx, tx, ret.OrderID, model.PaymentStatusRefunded, nil); err != nil {
				return nil, err
			}
			if err := s.recordHistory(ctx, tx, ret.OrderID, &from, model.OrderStatusRefunded, changedBy, nil); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifyReturnResolved(ctx, ret)
	if refundStatus == model.RefundStatusProcessed {
		s.notifier.Notify(ctx, order.UserID, notification.EventRefundCredited, map[string]interface{}{
			"order_id": order.ID.String(),
			"amount":   ret.RefundAmount.String(),
		})
	}

	return ret, nil
}

// =====================================================
// REACTIVATION
// =====================================================

func (s *orderService) Reactivate(ctx context.Context, orderID uuid.UUID, target model.OrderStatus, changedBy *uuid.UUID) (*model.OrderResponse, error) {
	if !model.CanBeReactivated(target) {
		return nil, model.NewOrderError(model.ErrCodeCannotReactivate, "Invalid reactivation target", model.ErrCannotReactivate)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsCancelled() {
		return nil, model.NewOrderError(model.ErrCodeCannotReactivate, "Only cancelled orders can be reactivated", model.ErrCannotReactivate)
	}

	items, err := s.orderRepo.GetOrderItemsForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	restored := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Status == model.ItemStatusCancelled {
			restored = append(restored, item)
		}
	}
	if len(restored) == 0 {
		return nil, model.NewOrderError(model.ErrCodeCannotReactivate, "No cancelled items to restore", model.ErrCannotReactivate)
	}

	// Stock must be re-reserved for every restored item or the whole
	// reactivation fails; the rollback undoes partial reservations.
	if err := s.inventory.Reserve(ctx, tx, linesForItems(restored), orderID); err != nil {
		return nil, model.NewOrderError(model.ErrCodeInsufficientStock, "Insufficient stock to reactivate", err)
	}

	for _, item := range restored {
		if err := s.orderRepo.UpdateItemStatusWithTx(ctx, tx, item.ID, model.ItemStatusActive); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, orderID, target, order.Version); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetStockReservedWithTx(ctx, tx, orderID, true); err != nil {
		return nil, err
	}
	if err := s.recordHistory(ctx, tx, orderID, &order.Status, target, changedBy, nil); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Notify(ctx, order.UserID, notification.EventOrderStatus, map[string]interface{}{
		"order_id": orderID.String(),
		"from":     order.Status.String(),
		"to":       target.String(),
	})

	return s.GetOrderDetail(ctx, orderID, order.UserID)
}

// =====================================================
// REFUND HELPER
// =====================================================

// creditRefund applies the canonical refund rule: money moves only when
// the order's payment completed, and only to the customer's wallet. The
// ledger's (kind, reference) guard makes repeated credits for the same
// event harmless.
func (s *orderService) creditRefund(ctx context.Context, tx pgx.Tx, order *model.Order, amount decimal.Decimal, description string, referenceID uuid.UUID) (model.RefundStatus, error) {
	if !order.IsPaid() || !amount.IsPositive() {
		return model.RefundStatusNotApplicable, nil
	}

	_, err := s.wallet.Credit(ctx, tx, order.UserID, amount, walletModel.TxKindRefund, description, referenceID)
	if err != nil {
		if errors.Is(err, walletModel.ErrDuplicateReference) {
			logger.Warn("refund already credited", map[string]interface{}{
				"order_id":     order.ID.String(),
				"reference_id": referenceID.String(),
			})
			return model.RefundStatusProcessed, nil
		}
		return model.RefundStatusPending, err
	}

	return model.RefundStatusProcessed, nil
}

func (s *orderService) notifyReturnResolved(ctx context.Context, ret *model.OrderReturn) {
	order, err := s.orderRepo.GetOrderByID(ctx, ret.OrderID)
	if err != nil {
		logger.Error("failed to load order for notification", err)
		return
	}
	s.notifier.Notify(ctx, order.UserID, notification.EventReturnResolved, map[string]interface{}{
		"order_id":  ret.OrderID.String(),
		"return_id": ret.ID.String(),
		"status":    string(ret.Status),
	})
}

func filterActive(items []model.OrderItem) []model.OrderItem {
	active := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if item.IsActive() {
			active = append(active, item)
		}
	}
	return active
}

func findItem(items []model.OrderItem, id uuid.UUID) *model.OrderItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
