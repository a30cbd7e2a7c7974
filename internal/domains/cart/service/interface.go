package service

import (
	"context"

	"github.com/google/uuid"

	"watchitup-backend/internal/domains/cart/model"
	"watchitup-backend/internal/domains/cart/session"
)

// SessionStore is the slice of the checkout session the cart touches.
// *session.Store satisfies it.
type SessionStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*session.Checkout, error)
	SetCoupon(ctx context.Context, userID uuid.UUID, code string) error
	ClearCoupon(ctx context.Context, userID uuid.UUID) error
}

type ServiceInterface interface {
	// GetPricedCart prices the cart against the live catalog, resolving
	// the best offer per line and applying any session coupon.
	GetPricedCart(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error)

	AddItem(ctx context.Context, userID uuid.UUID, req model.AddItemRequest) (*model.PricedCart, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.PricedCart, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.PricedCart, error)

	// ApplyCoupon validates the code against the current cart subtotal
	// and pins it to the checkout session.
	ApplyCoupon(ctx context.Context, userID uuid.UUID, code string) (*model.PricedCart, error)
	RemoveCoupon(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error)
}
