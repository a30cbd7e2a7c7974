package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateCouponRequest is the admin payload for a new coupon.
type CreateCouponRequest struct {
	Code          string           `json:"code"`
	DiscountType  string           `json:"discount_type"`
	DiscountValue decimal.Decimal  `json:"discount_value"`
	MaxDiscount   *decimal.Decimal `json:"max_discount,omitempty"`
	MinimumAmount decimal.Decimal  `json:"minimum_amount"`
	UsageLimit    *int             `json:"usage_limit,omitempty"`
	UsagePerUser  int              `json:"usage_per_user"`
	ValidFrom     time.Time        `json:"valid_from"`
	ValidTo       time.Time        `json:"valid_to"`
}

func (r CreateCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(3, 32)),
		validation.Field(&r.DiscountType, validation.Required, validation.In(DiscountTypePercentage, DiscountTypeFixed)),
		validation.Field(&r.DiscountValue, validation.Required, validation.By(positiveDecimal)),
		validation.Field(&r.UsagePerUser, validation.Required, validation.Min(1)),
		validation.Field(&r.ValidFrom, validation.Required),
		validation.Field(&r.ValidTo, validation.Required),
	)
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_positive", "must be a positive amount")
	}
	return nil
}
