package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	inventoryService "watchitup-backend/internal/domains/inventory/service"
	notification "watchitup-backend/internal/domains/notification/service"
	orderModel "watchitup-backend/internal/domains/order/model"
	orderRepository "watchitup-backend/internal/domains/order/repository"
	"watchitup-backend/internal/domains/payment/gateway"
	"watchitup-backend/internal/domains/payment/model"
	"watchitup-backend/internal/domains/payment/repository"
	"watchitup-backend/pkg/logger"
)

// =====================================================
// PAYMENT SERVICE IMPLEMENTATION
// =====================================================

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   orderRepository.OrderRepository
	gateway     gateway.Gateway
	inventory   inventoryService.Service
	notifier    notification.ServiceInterface
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo orderRepository.OrderRepository,
	gw gateway.Gateway,
	inventory inventoryService.Service,
	notifier notification.ServiceInterface,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		gateway:     gw,
		inventory:   inventory,
		notifier:    notifier,
	}
}

const intentCurrency = "INR"

// CreateIntent creates a gateway order for an unpaid razorpay order.
func (s *paymentService) CreateIntent(ctx context.Context, userID uuid.UUID, req *model.CreateIntentRequest) (*model.IntentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetOrderByIDAndUserID(ctx, req.OrderUUID(), userID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != orderModel.PaymentMethodRazorpay || order.PaymentStatus != orderModel.PaymentStatusPending {
		return nil, model.ErrOrderNotPayable
	}

	// The gateway call happens outside the transaction; a created but
	// never persisted gateway order simply expires on their side.
	intent, err := s.gateway.CreateIntent(ctx, gateway.IntentRequest{
		Amount:   order.Total,
		Currency: intentCurrency,
		Receipt:  order.OrderNumber,
		Notes:    map[string]string{"order_id": order.ID.String()},
	})
	if err != nil {
		logger.Error("gateway intent creation failed for order "+order.ID.String(), err)
		return nil, model.ErrGatewayUnavailable
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	record := &model.PaymentIntent{
		ID:              uuid.New(),
		OrderID:         order.ID,
		GatewayIntentID: intent.ID,
		Amount:          order.Total,
		Currency:        intent.Currency,
		Status:          model.IntentStatusCreated,
	}
	if err := s.paymentRepo.CreateIntentWithTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &model.IntentResponse{
		IntentID:        record.ID,
		GatewayIntentID: record.GatewayIntentID,
		Amount:          record.Amount,
		Currency:        record.Currency,
		KeyID:           s.gateway.KeyID(),
	}, nil
}

// HandleWebhook resolves a gateway callback.
func (s *paymentService) HandleWebhook(ctx context.Context, req *model.WebhookRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Verify before touching any state. A bad signature is rejected
	// even for failure events.
	if !s.gateway.VerifySignature(req.GatewayIntentID, req.GatewayPaymentID, req.Signature) {
		logger.Warn("webhook signature mismatch", map[string]interface{}{
			"gateway_intent_id": req.GatewayIntentID,
		})
		return model.ErrInvalidSignature
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.orderRepo.RollbackTx(ctx, tx)

	intent, err := s.paymentRepo.GetIntentForUpdateWithTx(ctx, tx, req.GatewayIntentID)
	if err != nil {
		return err
	}
	if intent.Status != model.IntentStatusCreated {
		// Gateways redeliver webhooks; a resolved intent means this
		// one was already processed.
		logger.Info("webhook replay ignored", map[string]interface{}{
			"intent_id": intent.ID.String(),
			"status":    string(intent.Status),
		})
		return nil
	}

	order, err := s.orderRepo.GetOrderForUpdateWithTx(ctx, tx, intent.OrderID)
	if err != nil {
		return err
	}

	var event string
	var payload map[string]interface{}

	switch req.Event {
	case model.WebhookEventCaptured:
		if err := s.applySuccess(ctx, tx, order, intent, req.GatewayPaymentID); err != nil {
			return err
		}
		event = notification.EventOrderStatus
		payload = map[string]interface{}{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"status":       string(orderModel.OrderStatusConfirmed),
		}
	case model.WebhookEventFailed:
		if err := s.applyFailure(ctx, tx, order, intent, req.GatewayPaymentID); err != nil {
			return err
		}
		event = notification.EventPaymentFailed
		payload = map[string]interface{}{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"reason":       req.FailureReason,
		}
	}

	if err := s.orderRepo.CommitTx(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Notify(ctx, order.UserID, event, payload)
	return nil
}

// applySuccess marks the order paid, reserves stock and confirms it.
func (s *paymentService) applySuccess(ctx context.Context, tx pgx.Tx, order *orderModel.Order, intent *model.PaymentIntent, paymentID string) error {
	if err := s.orderRepo.SetPaymentStatusWithTx(ctx, tx, order.ID, orderModel.PaymentStatusCompleted, &paymentID); err != nil {
		return err
	}

	// Stock for online orders is only taken once the money is real.
	if !order.StockReserved {
		items, err := s.orderRepo.GetOrderItemsForUpdateWithTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		if err := s.inventory.Reserve(ctx, tx, activeLines(items), order.ID); err != nil {
			return err
		}
		if err := s.orderRepo.SetStockReservedWithTx(ctx, tx, order.ID, true); err != nil {
			return err
		}
	}

	if order.Status == orderModel.OrderStatusPending {
		if err := s.orderRepo.UpdateOrderStatusWithTx(ctx, tx, order.ID, orderModel.OrderStatusConfirmed, order.Version); err != nil {
			return err
		}
		from := order.Status.String()
		note := "payment captured"
		if err := s.orderRepo.CreateOrderStatusHistoryWithTx(ctx, tx, &orderModel.OrderStatusHistory{
			ID:         uuid.New(),
			OrderID:    order.ID,
			FromStatus: &from,
			ToStatus:   orderModel.OrderStatusConfirmed.String(),
			Notes:      &note,
		}); err != nil {
			return err
		}
	}

	return s.paymentRepo.ResolveIntentWithTx(ctx, tx, intent.ID, model.IntentStatusPaid, &paymentID)
}

// applyFailure marks the payment failed. Inventory is untouched since
// nothing was reserved for an unpaid online order.
func (s *paymentService) applyFailure(ctx context.Context, tx pgx.Tx, order *orderModel.Order, intent *model.PaymentIntent, paymentID string) error {
	if err := s.orderRepo.SetPaymentStatusWithTx(ctx, tx, order.ID, orderModel.PaymentStatusFailed, &paymentID); err != nil {
		return err
	}
	return s.paymentRepo.ResolveIntentWithTx(ctx, tx, intent.ID, model.IntentStatusFailed, &paymentID)
}

func activeLines(items []orderModel.OrderItem) []inventoryModel.Line {
	lines := make([]inventoryModel.Line, 0, len(items))
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		lines = append(lines, inventoryModel.Line{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	return lines
}
