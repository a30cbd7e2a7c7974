package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"watchitup-backend/internal/domains/cart/model"
)

type RepositoryInterface interface {
	GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	GetItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItem, error)
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*model.CartItem, error)

	// UpsertItem inserts the line or, when the (cart, product, variant)
	// line already exists, adds the quantity to it.
	UpsertItem(ctx context.Context, item *model.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// ClearItemsWithTx empties the cart inside the order-placement
	// transaction so the cart and the new order commit together.
	ClearItemsWithTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error
}
