package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"watchitup-backend/internal/domains/coupon/model"
)

type RepositoryInterface interface {
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	CountUsageByUser(ctx context.Context, couponID, userID uuid.UUID) (int, error)

	// CreateUsageWithTx inserts the usage record and bumps used_count in
	// the same transaction as the order write.
	CreateUsageWithTx(ctx context.Context, tx pgx.Tx, usage *model.CouponUsage) error

	Create(ctx context.Context, coupon *model.Coupon) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
