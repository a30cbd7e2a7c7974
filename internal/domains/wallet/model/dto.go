package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// AdjustRequest is the admin payload for a manual balance correction.
// A positive amount credits the wallet, a negative amount debits it.
type AdjustRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r AdjustRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.By(nonZeroDecimal)),
		validation.Field(&r.Description, validation.Required, validation.Length(3, 255)),
	)
}

func nonZeroDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsZero() {
		return validation.NewError("validation_non_zero", "must be a non-zero amount")
	}
	return nil
}
