package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"watchitup-backend/internal/domains/cart/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

// GetOrCreateByUserID implements RepositoryInterface.GetOrCreateByUserID
func (r *postgresRepository) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	cart, err := r.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrCartNotFound) {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	query := `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, created_at, updated_at
	`

	now := time.Now()
	var created model.Cart
	err = r.pool.QueryRow(ctx, query, uuid.New(), userID, now).Scan(
		&created.ID,
		&created.UserID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return &created, nil
}

// GetByUserID implements RepositoryInterface.GetByUserID
func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var cart model.Cart
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get user cart: %w", err)
	}

	return &cart, nil
}

// GetItems implements RepositoryInterface.GetItems
func (r *postgresRepository) GetItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, variant_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := make([]model.CartItem, 0, 8)
	for rows.Next() {
		var item model.CartItem
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.VariantID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// GetItemByID implements RepositoryInterface.GetItemByID
func (r *postgresRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*model.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, variant_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, itemID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.VariantID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return &item, nil
}

// UpsertItem implements RepositoryInterface.UpsertItem
func (r *postgresRepository) UpsertItem(ctx context.Context, item *model.CartItem) error {
	// COALESCE in the index expression keeps (cart, product, NULL variant)
	// unique; the partial-index pair on cart_items backs this conflict target.
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, variant_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (cart_id, product_id, COALESCE(variant_id, '00000000-0000-0000-0000-000000000000'::uuid))
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = EXCLUDED.updated_at
		RETURNING id, quantity
	`

	err := r.pool.QueryRow(ctx, query,
		item.ID,
		item.CartID,
		item.ProductID,
		item.VariantID,
		item.Quantity,
		time.Now(),
	).Scan(&item.ID, &item.Quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

// UpdateItemQuantity implements RepositoryInterface.UpdateItemQuantity
func (r *postgresRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, itemID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem implements RepositoryInterface.DeleteItem
func (r *postgresRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}

// ClearItemsWithTx implements RepositoryInterface.ClearItemsWithTx
func (r *postgresRepository) ClearItemsWithTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
