// Package service enqueues user notifications on the worker queue.
// Delivery is fire-and-forget: a failed enqueue is logged, never
// propagated, so notification trouble cannot fail an order operation.
package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"watchitup-backend/internal/shared"
	"watchitup-backend/pkg/logger"
)

// Event kinds emitted by the order lifecycle.
const (
	EventOrderPlaced     = "order_placed"
	EventOrderStatus     = "order_status_changed"
	EventOrderCancelled  = "order_cancelled"
	EventReturnRequested = "return_requested"
	EventReturnResolved  = "return_resolved"
	EventRefundCredited  = "refund_credited"
	EventPaymentFailed   = "payment_failed"
)

type ServiceInterface interface {
	Notify(ctx context.Context, userID uuid.UUID, eventKind string, payload map[string]interface{})
}

type notificationService struct {
	client *asynq.Client
}

func NewService(client *asynq.Client) ServiceInterface {
	return &notificationService{client: client}
}

// Notify implements ServiceInterface.Notify
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, eventKind string, payload map[string]interface{}) {
	body, err := json.Marshal(shared.NotificationPayload{
		UserID:    userID.String(),
		EventKind: eventKind,
		Payload:   payload,
	})
	if err != nil {
		logger.Error("failed to marshal notification payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeNotificationSend, body)
	if _, err := s.client.Enqueue(task, asynq.Queue(shared.QueueNotifications)); err != nil {
		logger.Error("failed to enqueue notification", err)
	}
}
