package model

import "errors"

var (
	ErrIntentNotFound      = errors.New("payment intent not found")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrOrderNotPayable     = errors.New("order is not payable online")
	ErrIntentAlreadyClosed = errors.New("payment intent already resolved")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)
