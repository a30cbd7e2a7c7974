package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rule(discountType DiscountType, value string, maxDiscount *decimal.Decimal) OfferRule {
	return OfferRule{
		DiscountType:  discountType,
		DiscountValue: d(value),
		MaxDiscount:   maxDiscount,
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func TestOfferRuleDiscount(t *testing.T) {
	cap := d("100")

	tests := []struct {
		name  string
		rule  OfferRule
		price string
		want  string
	}{
		{"percentage", rule(DiscountTypePercentage, "10", nil), "2000", "200"},
		{"percentage capped", rule(DiscountTypePercentage, "10", &cap), "2000", "100"},
		{"percentage under cap", rule(DiscountTypePercentage, "10", &cap), "500", "50"},
		{"fixed", rule(DiscountTypeFixed, "150", nil), "2000", "150"},
		{"fixed exceeds price", rule(DiscountTypeFixed, "150", nil), "100", "100"},
		{"unknown type", OfferRule{DiscountType: "bogus", DiscountValue: d("10")}, "100", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Discount(d(tt.price))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestOfferRuleIsValidAt(t *testing.T) {
	now := time.Now()
	r := OfferRule{
		DiscountType:  DiscountTypePercentage,
		DiscountValue: d("10"),
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		IsActive:      true,
	}

	assert.True(t, r.IsValidAt(now))
	assert.False(t, r.IsValidAt(now.Add(-48*time.Hour)), "before window")
	assert.False(t, r.IsValidAt(now.Add(48*time.Hour)), "after window")

	r.IsActive = false
	assert.False(t, r.IsValidAt(now), "inactive")
}

func TestOfferRuleValidate(t *testing.T) {
	cap := d("50")

	valid := rule(DiscountTypePercentage, "10", nil)
	assert.NoError(t, valid.Validate())

	over := rule(DiscountTypePercentage, "150", nil)
	assert.ErrorIs(t, over.Validate(), ErrPercentageTooHigh)

	capped := rule(DiscountTypeFixed, "10", &cap)
	assert.ErrorIs(t, capped.Validate(), ErrMaxDiscountNotAllowed)

	inverted := rule(DiscountTypeFixed, "10", nil)
	inverted.EndDate = inverted.StartDate.Add(-time.Hour)
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidDateRange)

	zero := rule(DiscountTypeFixed, "0", nil)
	zero.DiscountValue = decimal.Zero
	assert.ErrorIs(t, zero.Validate(), ErrInvalidDiscountValue)
}
