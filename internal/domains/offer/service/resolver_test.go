package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "watchitup-backend/internal/domains/catalog/model"
	"watchitup-backend/internal/domains/offer/model"
)

type fakeOfferRepo struct {
	productOffers  []model.ProductOffer
	categoryOffers []model.CategoryOffer
}

func (f *fakeOfferRepo) FindProductOffers(ctx context.Context, productID uuid.UUID) ([]model.ProductOffer, error) {
	return f.productOffers, nil
}

func (f *fakeOfferRepo) FindCategoryOffers(ctx context.Context, categoryID uuid.UUID) ([]model.CategoryOffer, error) {
	return f.categoryOffers, nil
}

func (f *fakeOfferRepo) CreateProductOffer(ctx context.Context, offer *model.ProductOffer) error {
	return nil
}

func (f *fakeOfferRepo) CreateCategoryOffer(ctx context.Context, offer *model.CategoryOffer) error {
	return nil
}

func (f *fakeOfferRepo) DeactivateProductOffer(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeOfferRepo) DeactivateCategoryOffer(ctx context.Context, id uuid.UUID) error {
	return nil
}

func activeRule(discountType model.DiscountType, value string) model.OfferRule {
	return model.OfferRule{
		DiscountType:  discountType,
		DiscountValue: decimal.RequireFromString(value),
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func testProduct(price string) *catalogModel.Product {
	return &catalogModel.Product{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		BasePrice:  decimal.RequireFromString(price),
		IsActive:   true,
	}
}

func TestResolveBestOfferPicksLargestDiscount(t *testing.T) {
	repo := &fakeOfferRepo{
		productOffers: []model.ProductOffer{
			{ID: uuid.New(), Name: "Small", OfferRule: activeRule(model.DiscountTypeFixed, "50")},
		},
		categoryOffers: []model.CategoryOffer{
			{ID: uuid.New(), Name: "Big", OfferRule: activeRule(model.DiscountTypePercentage, "20")},
		},
	}
	svc := NewResolver(repo)

	// 20% of 1000 = 200 beats the fixed 50.
	best, err := svc.ResolveBestOffer(context.Background(), testProduct("1000"), nil)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "Big", best.Name)
	assert.Equal(t, model.OfferSourceCategory, best.Source)
}

func TestResolveBestOfferProductWinsTies(t *testing.T) {
	repo := &fakeOfferRepo{
		productOffers: []model.ProductOffer{
			{ID: uuid.New(), Name: "ProductTen", OfferRule: activeRule(model.DiscountTypePercentage, "10")},
		},
		categoryOffers: []model.CategoryOffer{
			{ID: uuid.New(), Name: "CategoryTen", OfferRule: activeRule(model.DiscountTypePercentage, "10")},
		},
	}
	svc := NewResolver(repo)

	best, err := svc.ResolveBestOffer(context.Background(), testProduct("1000"), nil)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, model.OfferSourceProduct, best.Source)
}

func TestResolveBestOfferSkipsExpired(t *testing.T) {
	expired := activeRule(model.DiscountTypePercentage, "50")
	expired.EndDate = time.Now().Add(-time.Minute)

	repo := &fakeOfferRepo{
		productOffers: []model.ProductOffer{
			{ID: uuid.New(), Name: "Expired", OfferRule: expired},
		},
		categoryOffers: []model.CategoryOffer{
			{ID: uuid.New(), Name: "Live", OfferRule: activeRule(model.DiscountTypeFixed, "30")},
		},
	}
	svc := NewResolver(repo)

	best, err := svc.ResolveBestOffer(context.Background(), testProduct("1000"), nil)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "Live", best.Name)
}

func TestResolveBestOfferNoneApplicable(t *testing.T) {
	svc := NewResolver(&fakeOfferRepo{})

	best, err := svc.ResolveBestOffer(context.Background(), testProduct("1000"), nil)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestApplyDiscount(t *testing.T) {
	svc := NewResolver(&fakeOfferRepo{})

	price := decimal.RequireFromString("2000")
	discounted, amount := svc.ApplyDiscount(activeRule(model.DiscountTypePercentage, "10"), price)

	assert.True(t, amount.Equal(decimal.RequireFromString("200")))
	assert.True(t, discounted.Equal(decimal.RequireFromString("1800")))
}
