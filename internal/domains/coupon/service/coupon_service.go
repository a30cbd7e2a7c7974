package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/domains/coupon/model"
	"watchitup-backend/internal/domains/coupon/repository"
)

type couponService struct {
	couponRepo repository.RepositoryInterface
	now        func() time.Time
}

func NewCouponService(couponRepo repository.RepositoryInterface) ServiceInterface {
	return &couponService{
		couponRepo: couponRepo,
		now:        time.Now,
	}
}

// Validate enforces, in order: coupon validity (active, window, global
// usage limit), minimum cart amount, then the per-user ceiling counted
// from the coupon_usages log.
func (s *couponService) Validate(
	ctx context.Context,
	code string,
	userID uuid.UUID,
	cartSubtotal decimal.Decimal,
) (*model.Coupon, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !coupon.IsValidAt(s.now()) {
		return nil, model.ErrCouponNotValid
	}

	if cartSubtotal.LessThan(coupon.MinimumAmount) {
		return nil, model.ErrCouponBelowMinimum
	}

	used, err := s.couponRepo.CountUsageByUser(ctx, coupon.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user coupon usage: %w", err)
	}
	if used >= coupon.UsagePerUser {
		return nil, model.ErrCouponPerUserLimit
	}

	return coupon, nil
}

// Redeem appends exactly one CouponUsage record for the redemption.
// Must run inside the same transaction as the order insert so the usage
// log and the order either both exist or neither does.
func (s *couponService) Redeem(
	ctx context.Context,
	tx pgx.Tx,
	coupon *model.Coupon,
	userID, orderID uuid.UUID,
	discount decimal.Decimal,
) error {
	usage := &model.CouponUsage{
		ID:             uuid.New(),
		CouponID:       coupon.ID,
		UserID:         userID,
		OrderID:        orderID,
		DiscountAmount: discount,
	}
	if err := s.couponRepo.CreateUsageWithTx(ctx, tx, usage); err != nil {
		return fmt.Errorf("failed to redeem coupon %s: %w", coupon.Code, err)
	}
	return nil
}

// Create registers a new coupon. Codes are normalized before storage so
// lookups stay case-insensitive.
func (s *couponService) Create(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.ValidTo.After(req.ValidFrom) {
		return nil, model.ErrCouponWindowInvalid
	}

	coupon := &model.Coupon{
		ID:            uuid.New(),
		Code:          model.NormalizeCode(req.Code),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MaxDiscount:   req.MaxDiscount,
		MinimumAmount: req.MinimumAmount,
		UsageLimit:    req.UsageLimit,
		UsagePerUser:  req.UsagePerUser,
		ValidFrom:     req.ValidFrom,
		ValidTo:       req.ValidTo,
		IsActive:      true,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Deactivate retires a coupon. Existing usage records are untouched.
func (s *couponService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.couponRepo.Deactivate(ctx, id)
}
