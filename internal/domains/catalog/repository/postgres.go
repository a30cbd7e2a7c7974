package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/catalog/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `
		SELECT id, name, category_id, brand_id, base_price, description,
		       stock_quantity, is_active, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.CategoryID,
		&p.BrandID,
		&p.BasePrice,
		&p.Description,
		&p.StockQuantity,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) GetVariantByID(ctx context.Context, id uuid.UUID) (*model.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, price, stock_quantity, is_active, created_at
		FROM product_variants
		WHERE id = $1
	`

	var v model.ProductVariant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.ProductID,
		&v.Name,
		&v.SKU,
		&v.Price,
		&v.StockQuantity,
		&v.IsActive,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVariantNotFound
		}
		return nil, fmt.Errorf("failed to get variant by id: %w", err)
	}

	return &v, nil
}

func (r *postgresRepository) GetVariantsByProductID(ctx context.Context, productID uuid.UUID) ([]model.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, price, stock_quantity, is_active, created_at
		FROM product_variants
		WHERE product_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	defer rows.Close()

	var variants []model.ProductVariant
	for rows.Next() {
		var v model.ProductVariant
		if err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&v.Name,
			&v.SKU,
			&v.Price,
			&v.StockQuantity,
			&v.IsActive,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, v)
	}

	return variants, rows.Err()
}

func (r *postgresRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	query := `SELECT id, name, is_active, created_at FROM categories WHERE id = $1`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return &c, nil
}
