package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/domains/coupon/model"
)

type ServiceInterface interface {
	// Validate checks the coupon against its window, usage ceilings and
	// the cart subtotal. Returns the coupon on success.
	Validate(ctx context.Context, code string, userID uuid.UUID, cartSubtotal decimal.Decimal) (*model.Coupon, error)

	// Redeem records a CouponUsage inside the order-placement transaction.
	Redeem(ctx context.Context, tx pgx.Tx, coupon *model.Coupon, userID, orderID uuid.UUID, discount decimal.Decimal) error

	// Admin operations.
	Create(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
