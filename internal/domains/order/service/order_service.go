package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	cartModel "watchitup-backend/internal/domains/cart/model"
	cartRepo "watchitup-backend/internal/domains/cart/repository"
	cartService "watchitup-backend/internal/domains/cart/service"
	"watchitup-backend/internal/domains/cart/session"
	couponModel "watchitup-backend/internal/domains/coupon/model"
	couponRepo "watchitup-backend/internal/domains/coupon/repository"
	couponService "watchitup-backend/internal/domains/coupon/service"
	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	inventoryService "watchitup-backend/internal/domains/inventory/service"
	notification "watchitup-backend/internal/domains/notification/service"
	"watchitup-backend/internal/domains/order/model"
	"watchitup-backend/internal/domains/order/repository"
	walletModel "watchitup-backend/internal/domains/wallet/model"
	walletService "watchitup-backend/internal/domains/wallet/service"
	"watchitup-backend/pkg/logger"
)

// =====================================================
// ORDER SERVICE IMPLEMENTATION
// =====================================================
type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    cartRepo.RepositoryInterface
	cartService cartService.ServiceInterface
	couponRepo  couponRepo.RepositoryInterface
	coupons     couponService.ServiceInterface
	inventory   inventoryService.Service
	wallet      walletService.ServiceInterface
	sessions    *session.Store
	notifier    notification.ServiceInterface
	now         func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepository cartRepo.RepositoryInterface,
	cartSvc cartService.ServiceInterface,
	couponRepository couponRepo.RepositoryInterface,
	coupons couponService.ServiceInterface,
	inventory inventoryService.Service,
	wallet walletService.ServiceInterface,
	sessions *session.Store,
	notifier notification.ServiceInterface,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepository,
		cartService: cartSvc,
		couponRepo:  couponRepository,
		coupons:     coupons,
		inventory:   inventory,
		wallet:      wallet,
		sessions:    sessions,
		notifier:    notifier,
		now:         time.Now,
	}
}

// =====================================================
// PLACE ORDER
// =====================================================

func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req model.PlaceOrderRequest) (*model.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewOrderError(model.ErrCodeInvalidPayment, "Invalid request", err)
	}

	// Step 1: price the cart server-side. The client never sends amounts.
	priced, err := s.cartService.GetPricedCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(priced.Items) == 0 {
		return nil, model.NewOrderError(model.ErrCodeCartEmpty, "Cart is empty", model.ErrCartEmpty)
	}

	// Step 2: resolve the session coupon to its entity for redemption.
	var coupon *couponModel.Coupon
	if priced.CouponCode != nil {
		coupon, err = s.couponRepo.FindByCode(ctx, *priced.CouponCode)
		if err != nil {
			return nil, model.NewOrderError(model.ErrCodeCouponInvalid, "Coupon attached to session is invalid", err)
		}
	}

	method := model.PaymentMethod(req.PaymentMethod)
	// Gateway orders reserve stock only once payment is confirmed by the
	// webhook; COD and wallet orders reserve at placement.
	reserveNow := method != model.PaymentMethodRazorpay

	lines := make([]inventoryModel.Line, 0, len(priced.Items))
	for _, item := range priced.Items {
		lines = append(lines, inventoryModel.Line{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	// Step 3: transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	orderID := uuid.New()
	now := s.now()

	if reserveNow {
		if err := s.inventory.Reserve(ctx, tx, lines, orderID); err != nil {
			return nil, model.NewOrderError(model.ErrCodeInsufficientStock, "Failed to reserve stock", err)
		}
	}

	var couponID *uuid.UUID
	if coupon != nil {
		couponID = &coupon.ID
	}

	order := &model.Order{
		ID:              orderID,
		OrderNumber:     model.GenerateOrderNumber(now),
		UserID:          userID,
		CouponID:        couponID,
		Subtotal:        priced.Totals.Subtotal,
		TaxAmount:       priced.Totals.Tax,
		ShippingFee:     priced.Totals.Shipping,
		DiscountAmount:  priced.Totals.Discount,
		Total:           priced.Totals.Total,
		PaymentMethod:   method,
		PaymentStatus:   model.PaymentStatusPending,
		Status:          model.OrderStatusPending,
		StockReserved:   reserveNow,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingPincode: req.ShippingPincode,
		Version:         0,
	}

	// Wallet orders pay inside the placement transaction.
	if method == model.PaymentMethodWallet {
		if _, err := s.wallet.Debit(ctx, tx, userID, order.Total, walletModel.TxKindPurchase,
			fmt.Sprintf("Payment for order %s", order.OrderNumber), orderID); err != nil {
			return nil, err
		}
		order.PaymentStatus = model.PaymentStatusCompleted
		order.PaidAt = &now
	}

	if err := s.orderRepo.CreateOrderWithTx(ctx, tx, order); err != nil {
		return nil, err
	}

	items := s.buildOrderItems(orderID, priced.Items)
	if err := s.orderRepo.CreateOrderItemsWithTx(ctx, tx, items); err != nil {
		return nil, err
	}

	if err := s.recordHistory(ctx, tx, orderID, nil, order.Status, &userID, nil); err != nil {
		return nil, err
	}

	// Coupon usage is the source of truth; used_count moves in the same
	// transaction.
	if coupon != nil {
		if err := s.coupons.Redeem(ctx, tx, coupon, userID, orderID, priced.CouponAmount); err != nil {
			return nil, err
		}
	}

	if err := s.cartRepo.ClearItemsWithTx(ctx, tx, priced.CartID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Post-commit: the checkout session is spent.
	if err := s.sessions.Delete(ctx, userID); err != nil {
		logger.Error("failed to delete checkout session", err)
	}

	s.notifier.Notify(ctx, userID, notification.EventOrderPlaced, map[string]interface{}{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"total":        order.Total.String(),
	})

	return order.ToResponse(items, order.DiscountAmount), nil
}

func (s *orderService) buildOrderItems(orderID uuid.UUID, priced []cartModel.PricedItem) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(priced))
	for _, p := range priced {
		itemTotal := p.DiscountedUnit.Mul(decimal.NewFromInt(int64(p.Quantity)))
		items = append(items, model.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   p.ProductID,
			VariantID:   p.VariantID,
			ProductName: p.ProductName,
			VariantName: p.VariantName,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			Discount:    p.UnitDiscount,
			ItemTotal:   itemTotal,
			Status:      model.ItemStatusActive,
		})
	}
	return items
}

// =====================================================
// READS
// =====================================================

func (s *orderService) GetOrderDetail(ctx context.Context, orderID, userID uuid.UUID) (*model.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := order.ToResponse(items, order.DiscountAmount)

	history, err := s.orderRepo.GetOrderStatusHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp.StatusHistory = history

	return resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]model.OrderListResponse, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := s.orderRepo.ListOrdersByUserID(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	list := make([]model.OrderListResponse, 0, len(orders))
	for _, o := range orders {
		items, err := s.orderRepo.GetOrderItemsByOrderID(ctx, o.ID)
		if err != nil {
			return nil, 0, err
		}
		counts := model.CountItemStatuses(items)
		list = append(list, model.OrderListResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			Total:         o.Total,
			Status:        o.Status,
			DisplayStatus: model.DeriveDisplayStatus(o.Status, counts),
			ItemCount:     len(items),
			CreatedAt:     o.CreatedAt,
		})
	}

	return list, total, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, status string, page, limit int) ([]model.OrderListResponse, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := s.orderRepo.ListAllOrders(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	list := make([]model.OrderListResponse, 0, len(orders))
	for _, o := range orders {
		items, err := s.orderRepo.GetOrderItemsByOrderID(ctx, o.ID)
		if err != nil {
			return nil, 0, err
		}
		counts := model.CountItemStatuses(items)
		list = append(list, model.OrderListResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			Total:         o.Total,
			Status:        o.Status,
			DisplayStatus: model.DeriveDisplayStatus(o.Status, counts),
			ItemCount:     len(items),
			CreatedAt:     o.CreatedAt,
		})
	}

	return list, total, nil
}

// =====================================================
// STATUS TRANSITIONS
// =====================================================

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus model.OrderStatus, changedBy *uuid.UUID, notes *string) (*model.Order, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	// Marking delivered twice keeps the original timestamp and reports
	// success.
	if newStatus == model.OrderStatusDelivered && order.IsDelivered() {
		return order, nil
	}

	if err := model.CanTransition(order.Status, newStatus); err != nil {
		return nil, model.NewOrderError(model.ErrCodeInvalidStatus, "Invalid status transition", err)
	}

	if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, orderID, newStatus, order.Version); err != nil {
		return nil, err
	}

	if newStatus == model.OrderStatusDelivered {
		if err := s.orderRepo.SetDeliveredAtWithTx(ctx, tx, orderID); err != nil {
			return nil, err
		}
	}

	if err := s.recordHistory(ctx, tx, orderID, &order.Status, newStatus, changedBy, notes); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Notify(ctx, order.UserID, notification.EventOrderStatus, map[string]interface{}{
		"order_id": orderID.String(),
		"from":     order.Status.String(),
		"to":       newStatus.String(),
	})

	updated, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// =====================================================
// SHARED HELPERS
// =====================================================

func (s *orderService) recordHistory(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, from *model.OrderStatus, to model.OrderStatus, changedBy *uuid.UUID, notes *string) error {
	var fromStr *string
	if from != nil {
		v := from.String()
		fromStr = &v
	}
	return s.orderRepo.CreateOrderStatusHistoryWithTx(ctx, tx, &model.OrderStatusHistory{
		ID:         uuid.New(),
		OrderID:    orderID,
		FromStatus: fromStr,
		ToStatus:   to.String(),
		ChangedBy:  changedBy,
		Notes:      notes,
	})
}

// linesForItems converts order items to inventory lines.
func linesForItems(items []model.OrderItem) []inventoryModel.Line {
	lines := make([]inventoryModel.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, inventoryModel.Line{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	return lines
}
