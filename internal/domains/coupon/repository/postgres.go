package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/coupon/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `
		SELECT id, code, discount_type, discount_value, max_discount, minimum_amount,
		       usage_limit, usage_per_user, used_count, valid_from, valid_to,
		       is_active, created_at
		FROM coupons
		WHERE code = $1
	`

	var cp model.Coupon
	err := r.pool.QueryRow(ctx, query, model.NormalizeCode(code)).Scan(
		&cp.ID,
		&cp.Code,
		&cp.DiscountType,
		&cp.DiscountValue,
		&cp.MaxDiscount,
		&cp.MinimumAmount,
		&cp.UsageLimit,
		&cp.UsagePerUser,
		&cp.UsedCount,
		&cp.ValidFrom,
		&cp.ValidTo,
		&cp.IsActive,
		&cp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to find coupon by code: %w", err)
	}

	return &cp, nil
}

func (r *postgresRepository) CountUsageByUser(ctx context.Context, couponID, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM coupon_usages WHERE coupon_id = $1 AND user_id = $2`,
		couponID, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count coupon usage: %w", err)
	}
	return count, nil
}

// CreateUsageWithTx appends the usage row and keeps the denormalized
// used_count cache consistent within the caller's transaction.
func (r *postgresRepository) CreateUsageWithTx(ctx context.Context, tx pgx.Tx, usage *model.CouponUsage) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO coupon_usages (id, coupon_id, user_id, order_id, discount_amount, used_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, usage.ID, usage.CouponID, usage.UserID, usage.OrderID, usage.DiscountAmount)
	if err != nil {
		return fmt.Errorf("failed to create coupon usage: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE coupons SET used_count = used_count + 1 WHERE id = $1`,
		usage.CouponID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment coupon used_count: %w", err)
	}

	return nil
}

func (r *postgresRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	query := `
		INSERT INTO coupons (
			id, code, discount_type, discount_value, max_discount, minimum_amount,
			usage_limit, usage_per_user, used_count, valid_from, valid_to,
			is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		coupon.ID,
		model.NormalizeCode(coupon.Code),
		coupon.DiscountType,
		coupon.DiscountValue,
		coupon.MaxDiscount,
		coupon.MinimumAmount,
		coupon.UsageLimit,
		coupon.UsagePerUser,
		coupon.ValidFrom,
		coupon.ValidTo,
		coupon.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrCouponCodeTaken
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

func (r *postgresRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `UPDATE coupons SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate coupon: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCouponNotFound
	}
	return nil
}
