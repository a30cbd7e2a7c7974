package repository

import (
	"context"

	"github.com/google/uuid"

	"watchitup-backend/internal/domains/catalog/model"
)

// RepositoryInterface provides read-only catalog access. The engine never
// writes catalog metadata; stock mutation goes through the inventory domain.
type RepositoryInterface interface {
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetVariantByID(ctx context.Context, id uuid.UUID) (*model.ProductVariant, error)
	GetVariantsByProductID(ctx context.Context, productID uuid.UUID) ([]model.ProductVariant, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
}
