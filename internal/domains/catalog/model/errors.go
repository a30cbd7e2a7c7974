package model

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrProductInactive  = errors.New("product is not available")
	ErrCategoryNotFound = errors.New("category not found")
)
