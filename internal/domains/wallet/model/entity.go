package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction kinds. The kind plus reference_id uniquely identifies a
// logical money movement, which is what makes refunds idempotent.
const (
	TxKindRefund     = "refund"
	TxKindPurchase   = "purchase"
	TxKindAdjustment = "adjustment"
)

// Wallet holds a user's store-credit balance. The balance is a cache of
// the transaction history and must equal the sum of all transaction
// amounts at all times.
type Wallet struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// WalletTransaction is an append-only ledger entry. Amount is signed:
// positive for credits, negative for debits. BalanceAfter snapshots the
// post-transaction balance so history replay is verifiable.
type WalletTransaction struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	WalletID     uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	Kind         string          `json:"kind" db:"kind"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after" db:"balance_after"`
	Description  string          `json:"description" db:"description"`
	ReferenceID  uuid.UUID       `json:"reference_id" db:"reference_id"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
