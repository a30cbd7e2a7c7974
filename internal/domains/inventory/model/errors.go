package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrStockRowNotFound  = errors.New("stock row not found")
)

// InsufficientStockError carries the per-line detail a customer-facing
// message needs.
type InsufficientStockError struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

func NewInsufficientStockError(productID uuid.UUID, variantID *uuid.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		VariantID: variantID,
		Requested: requested,
		Available: available,
	}
}
