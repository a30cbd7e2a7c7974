package model

import "errors"

var (
	ErrOfferNotFound         = errors.New("offer not found")
	ErrInvalidDiscountType   = errors.New("discount_type must be 'percentage' or 'fixed'")
	ErrInvalidDiscountValue  = errors.New("discount_value must be greater than zero")
	ErrPercentageTooHigh     = errors.New("percentage discount cannot exceed 100")
	ErrMaxDiscountNotAllowed = errors.New("max_discount is only valid for percentage discounts")
	ErrInvalidDateRange      = errors.New("end_date must not be before start_date")
)
