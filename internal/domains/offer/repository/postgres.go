package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/offer/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindProductOffers(ctx context.Context, productID uuid.UUID) ([]model.ProductOffer, error) {
	query := `
		SELECT id, product_id, name, discount_type, discount_value, max_discount,
		       start_date, end_date, is_active, created_at
		FROM product_offers
		WHERE product_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product offers: %w", err)
	}
	defer rows.Close()

	var offers []model.ProductOffer
	for rows.Next() {
		var o model.ProductOffer
		if err := rows.Scan(
			&o.ID,
			&o.ProductID,
			&o.Name,
			&o.DiscountType,
			&o.DiscountValue,
			&o.MaxDiscount,
			&o.StartDate,
			&o.EndDate,
			&o.IsActive,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product offer: %w", err)
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

func (r *postgresRepository) FindCategoryOffers(ctx context.Context, categoryID uuid.UUID) ([]model.CategoryOffer, error) {
	query := `
		SELECT id, category_id, name, discount_type, discount_value, max_discount,
		       start_date, end_date, is_active, created_at
		FROM category_offers
		WHERE category_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category offers: %w", err)
	}
	defer rows.Close()

	var offers []model.CategoryOffer
	for rows.Next() {
		var o model.CategoryOffer
		if err := rows.Scan(
			&o.ID,
			&o.CategoryID,
			&o.Name,
			&o.DiscountType,
			&o.DiscountValue,
			&o.MaxDiscount,
			&o.StartDate,
			&o.EndDate,
			&o.IsActive,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category offer: %w", err)
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

func (r *postgresRepository) CreateProductOffer(ctx context.Context, offer *model.ProductOffer) error {
	query := `
		INSERT INTO product_offers (
			id, product_id, name, discount_type, discount_value, max_discount,
			start_date, end_date, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		offer.ID,
		offer.ProductID,
		offer.Name,
		offer.DiscountType,
		offer.DiscountValue,
		offer.MaxDiscount,
		offer.StartDate,
		offer.EndDate,
		offer.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create product offer: %w", err)
	}
	return nil
}

func (r *postgresRepository) CreateCategoryOffer(ctx context.Context, offer *model.CategoryOffer) error {
	query := `
		INSERT INTO category_offers (
			id, category_id, name, discount_type, discount_value, max_discount,
			start_date, end_date, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		offer.ID,
		offer.CategoryID,
		offer.Name,
		offer.DiscountType,
		offer.DiscountValue,
		offer.MaxDiscount,
		offer.StartDate,
		offer.EndDate,
		offer.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create category offer: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeactivateProductOffer(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `UPDATE product_offers SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate product offer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}
	return nil
}

func (r *postgresRepository) DeactivateCategoryOffer(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `UPDATE category_offers SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate category offer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}
	return nil
}
