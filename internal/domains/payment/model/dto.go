package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIntentRequest starts an online payment for an existing order.
type CreateIntentRequest struct {
	OrderID string `json:"order_id"`
}

func (r CreateIntentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderID, validation.Required, is.UUIDv4),
	)
}

func (r CreateIntentRequest) OrderUUID() uuid.UUID {
	id, _ := uuid.Parse(r.OrderID)
	return id
}

// WebhookRequest is the gateway callback body. The signature covers
// "<gateway_intent_id>|<gateway_payment_id>".
type WebhookRequest struct {
	Event            string `json:"event"`
	GatewayIntentID  string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	Signature        string `json:"razorpay_signature"`
	FailureReason    string `json:"failure_reason,omitempty"`
}

func (r WebhookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Event, validation.Required, validation.In(WebhookEventCaptured, WebhookEventFailed)),
		validation.Field(&r.GatewayIntentID, validation.Required),
		validation.Field(&r.GatewayPaymentID, validation.Required),
		validation.Field(&r.Signature, validation.Required),
	)
}

const (
	WebhookEventCaptured = "payment.captured"
	WebhookEventFailed   = "payment.failed"
)

// IntentResponse is what the client needs to open the gateway checkout.
type IntentResponse struct {
	IntentID        uuid.UUID       `json:"intent_id"`
	GatewayIntentID string          `json:"gateway_intent_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	KeyID           string          `json:"key_id"`
}
