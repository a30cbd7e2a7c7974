package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeOrderNotFound      = "ORD001"
	ErrCodeOrderCannotCancel  = "ORD002"
	ErrCodeVersionMismatch    = "ORD003"
	ErrCodeInsufficientStock  = "ORD004"
	ErrCodeCouponInvalid      = "ORD005"
	ErrCodeCartEmpty          = "ORD006"
	ErrCodeInvalidPayment     = "ORD007"
	ErrCodeInvalidStatus      = "ORD008"
	ErrCodeItemNotFound       = "ORD009"
	ErrCodeItemNotActive      = "ORD010"
	ErrCodeReturnWindowClosed = "ORD011"
	ErrCodeReturnNotFound     = "ORD012"
	ErrCodeReturnNotPending   = "ORD013"
	ErrCodeReturnNotApproved  = "ORD014"
	ErrCodeCannotReactivate   = "ORD015"
	ErrCodeUnauthorized       = "ORD016"
	ErrCodeReturnAlreadyOpen  = "ORD017"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCannotCancel  = errors.New("order cannot be cancelled at this stage")
	ErrVersionMismatch    = errors.New("concurrent modification detected")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrItemNotFound       = errors.New("order item not found")
	ErrItemNotActive      = errors.New("order item is not active")
	ErrReturnWindowClosed = errors.New("return window has closed")
	ErrReturnNotFound     = errors.New("return request not found")
	ErrReturnNotPending   = errors.New("return request is not pending")
	ErrReturnNotApproved  = errors.New("return request is not approved")
	ErrCannotReactivate   = errors.New("order cannot be reactivated to this status")
	ErrUnauthorized       = errors.New("order does not belong to user")
	ErrReturnAlreadyOpen  = errors.New("an open return request already covers these items")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type OrderError struct {
	Code    string
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError
func NewOrderError(code, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
