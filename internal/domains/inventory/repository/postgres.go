package repository

import (
	"context"
	"errors"
	"fmt"

	"watchitup-backend/internal/domains/inventory/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// GetStockForUpdateWithTx implements Repository.GetStockForUpdateWithTx
func (r *postgresRepository) GetStockForUpdateWithTx(ctx context.Context, tx pgx.Tx, line model.Line) (int, error) {
	var (
		query string
		id    uuid.UUID
	)

	if line.VariantID != nil {
		// FOR UPDATE prevents two orders from reserving the same units
		query = `
			SELECT stock_quantity
			FROM product_variants
			WHERE id = $1 AND is_active = true
			FOR UPDATE
		`
		id = *line.VariantID
	} else {
		query = `
			SELECT stock_quantity
			FROM products
			WHERE id = $1 AND is_active = true
			FOR UPDATE
		`
		id = line.ProductID
	}

	var quantity int
	if err := tx.QueryRow(ctx, query, id).Scan(&quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrStockRowNotFound
		}
		return 0, fmt.Errorf("failed to lock stock row: %w", err)
	}

	return quantity, nil
}

// AdjustStockWithTx implements Repository.AdjustStockWithTx
func (r *postgresRepository) AdjustStockWithTx(ctx context.Context, tx pgx.Tx, line model.Line, delta int, movementType string, referenceID uuid.UUID) error {
	var query string
	var id uuid.UUID

	if line.VariantID != nil {
		query = `
			UPDATE product_variants
			SET stock_quantity = stock_quantity + $2,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING stock_quantity
		`
		id = *line.VariantID
	} else {
		query = `
			UPDATE products
			SET stock_quantity = stock_quantity + $2,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING stock_quantity
		`
		id = line.ProductID
	}

	var quantityAfter int
	if err := tx.QueryRow(ctx, query, id, delta).Scan(&quantityAfter); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrStockRowNotFound
		}
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	// Audit trail row, committed with the stock change
	movementQuery := `
		INSERT INTO stock_movements (
			id, product_id, variant_id, movement_type, quantity,
			quantity_before, quantity_after, reference_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW()
		)
	`

	_, err := tx.Exec(ctx, movementQuery,
		uuid.New(),
		line.ProductID,
		line.VariantID,
		movementType,
		delta,
		quantityAfter-delta,
		quantityAfter,
		referenceID,
	)
	if err != nil {
		return fmt.Errorf("failed to log stock movement: %w", err)
	}

	return nil
}

// GetAvailable implements Repository.GetAvailable
func (r *postgresRepository) GetAvailable(ctx context.Context, line model.Line) (int, error) {
	var query string
	var id uuid.UUID

	if line.VariantID != nil {
		query = `SELECT stock_quantity FROM product_variants WHERE id = $1 AND is_active = true`
		id = *line.VariantID
	} else {
		query = `SELECT stock_quantity FROM products WHERE id = $1 AND is_active = true`
		id = line.ProductID
	}

	var quantity int
	if err := r.pool.QueryRow(ctx, query, id).Scan(&quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrStockRowNotFound
		}
		return 0, fmt.Errorf("failed to get stock quantity: %w", err)
	}

	return quantity, nil
}

// ListMovements implements Repository.ListMovements
func (r *postgresRepository) ListMovements(ctx context.Context, referenceID uuid.UUID) ([]model.StockMovement, error) {
	query := `
		SELECT
			id, product_id, variant_id, movement_type, quantity,
			quantity_before, quantity_after, reference_id, created_at
		FROM stock_movements
		WHERE reference_id = $1
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movements: %w", err)
	}
	defer rows.Close()

	movements := make([]model.StockMovement, 0, 8)
	for rows.Next() {
		var m model.StockMovement
		err := rows.Scan(
			&m.ID,
			&m.ProductID,
			&m.VariantID,
			&m.MovementType,
			&m.Quantity,
			&m.QuantityBefore,
			&m.QuantityAfter,
			&m.ReferenceID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock movements: %w", err)
	}

	return movements, nil
}
