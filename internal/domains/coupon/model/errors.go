package model

import "errors"

var (
	ErrCouponNotFound      = errors.New("coupon code not found")
	ErrCouponNotValid      = errors.New("coupon is not valid")
	ErrCouponBelowMinimum  = errors.New("cart subtotal below coupon minimum amount")
	ErrCouponPerUserLimit  = errors.New("you have reached the usage limit for this coupon")
	ErrCouponCodeTaken     = errors.New("coupon code already exists")
	ErrCouponWindowInvalid = errors.New("coupon validity window is invalid")
)
