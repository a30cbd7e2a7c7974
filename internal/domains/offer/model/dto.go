package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateOfferRequest creates a product or category offer depending on
// which target ID is set.
type CreateOfferRequest struct {
	ProductID  string  `json:"product_id,omitempty"`
	CategoryID string  `json:"category_id,omitempty"`
	Name       string  `json:"name"`
	Type       string  `json:"discount_type"`
	Value      float64 `json:"discount_value"`
	MaxAmount  float64 `json:"max_discount,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

func (r CreateOfferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.Type, validation.Required, validation.In("percentage", "fixed")),
		validation.Field(&r.Value, validation.Required, validation.Min(0.01)),
		validation.Field(&r.StartDate, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&r.EndDate, validation.Required, validation.Date(time.RFC3339)),
	)
}

// Rule builds the OfferRule from the request after Validate passed.
func (r CreateOfferRequest) Rule() (OfferRule, error) {
	start, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return OfferRule{}, err
	}
	end, err := time.Parse(time.RFC3339, r.EndDate)
	if err != nil {
		return OfferRule{}, err
	}

	rule := OfferRule{
		DiscountType:  DiscountType(r.Type),
		DiscountValue: decimal.NewFromFloat(r.Value),
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
	}
	if r.MaxAmount > 0 {
		max := decimal.NewFromFloat(r.MaxAmount)
		rule.MaxDiscount = &max
	}

	if err := rule.Validate(); err != nil {
		return OfferRule{}, err
	}
	return rule, nil
}
