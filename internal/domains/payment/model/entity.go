package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IntentStatus mirrors the gateway-side life of a payment intent.
type IntentStatus string

const (
	IntentStatusCreated IntentStatus = "created"
	IntentStatusPaid    IntentStatus = "paid"
	IntentStatusFailed  IntentStatus = "failed"
)

// PaymentIntent links one gateway order to one of ours. A fresh intent
// is created per payment attempt; the webhook resolves it.
type PaymentIntent struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OrderID         uuid.UUID       `json:"order_id" db:"order_id"`
	GatewayIntentID string          `json:"gateway_intent_id" db:"gateway_intent_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Currency        string          `json:"currency" db:"currency"`
	Status          IntentStatus    `json:"status" db:"status"`
	GatewayPayment  *string         `json:"gateway_payment_id,omitempty" db:"gateway_payment_id"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
