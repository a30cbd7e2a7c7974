package repository

import (
	"context"

	"github.com/google/uuid"

	"watchitup-backend/internal/domains/offer/model"
)

type RepositoryInterface interface {
	FindProductOffers(ctx context.Context, productID uuid.UUID) ([]model.ProductOffer, error)
	FindCategoryOffers(ctx context.Context, categoryID uuid.UUID) ([]model.CategoryOffer, error)

	CreateProductOffer(ctx context.Context, offer *model.ProductOffer) error
	CreateCategoryOffer(ctx context.Context, offer *model.CategoryOffer) error
	DeactivateProductOffer(ctx context.Context, id uuid.UUID) error
	DeactivateCategoryOffer(ctx context.Context, id uuid.UUID) error
}
