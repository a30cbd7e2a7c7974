package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// IntentRequest asks the provider to create a payable order on its side.
type IntentRequest struct {
	Amount   decimal.Decimal
	Currency string
	Receipt  string // our order number, echoed back in dashboards
	Notes    map[string]string
}

// Intent is the provider-side handle the client pays against.
type Intent struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}

// Gateway abstracts the payment provider so the service layer stays
// provider-agnostic.
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	VerifySignature(intentID, paymentID, signature string) bool
	KeyID() string
}
