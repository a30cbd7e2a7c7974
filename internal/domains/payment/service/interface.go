package service

import (
	"context"

	"github.com/google/uuid"

	"watchitup-backend/internal/domains/payment/model"
)

// PaymentService drives online payments for orders placed with the
// razorpay method.
type PaymentService interface {
	// CreateIntent creates a gateway order for an unpaid online order
	// and returns what the client needs to open checkout.
	CreateIntent(ctx context.Context, userID uuid.UUID, req *model.CreateIntentRequest) (*model.IntentResponse, error)

	// HandleWebhook resolves a gateway callback. Success marks the
	// order paid and reserves stock; failure marks the payment failed
	// and leaves inventory untouched. Replayed callbacks are no-ops.
	HandleWebhook(ctx context.Context, req *model.WebhookRequest) error
}
