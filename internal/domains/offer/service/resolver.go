package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	catalogModel "watchitup-backend/internal/domains/catalog/model"
	"watchitup-backend/internal/domains/offer/model"
	"watchitup-backend/internal/domains/offer/repository"
)

type resolver struct {
	offerRepo repository.RepositoryInterface
	now       func() time.Time
}

func NewResolver(offerRepo repository.RepositoryInterface) ServiceInterface {
	return &resolver{
		offerRepo: offerRepo,
		now:       time.Now,
	}
}

// ResolveBestOffer evaluates the product's own offers and its category's
// offers, filters to currently valid ones, and picks whichever yields the
// larger absolute discount on the reference price. A product offer wins
// exact ties.
func (s *resolver) ResolveBestOffer(
	ctx context.Context,
	product *catalogModel.Product,
	variants []catalogModel.ProductVariant,
) (*model.ResolvedOffer, error) {
	productOffers, err := s.offerRepo.FindProductOffers(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product offers: %w", err)
	}

	categoryOffers, err := s.offerRepo.FindCategoryOffers(ctx, product.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category offers: %w", err)
	}

	now := s.now()
	refPrice := product.ReferencePrice(variants)

	var best *model.ResolvedOffer
	bestDiscount := decimal.Zero

	for _, o := range productOffers {
		if !o.IsValidAt(now) {
			continue
		}
		discount := o.Discount(refPrice)
		// Product offers are evaluated first, so >= keeps product-level
		// specificity on exact ties.
		if best == nil || discount.GreaterThanOrEqual(bestDiscount) {
			best = &model.ResolvedOffer{
				OfferID: o.ID,
				Name:    o.Name,
				Source:  model.OfferSourceProduct,
				Rule:    o.OfferRule,
			}
			bestDiscount = discount
		}
	}

	for _, o := range categoryOffers {
		if !o.IsValidAt(now) {
			continue
		}
		discount := o.Discount(refPrice)
		if best == nil || discount.GreaterThan(bestDiscount) {
			best = &model.ResolvedOffer{
				OfferID: o.ID,
				Name:    o.Name,
				Source:  model.OfferSourceCategory,
				Rule:    o.OfferRule,
			}
			bestDiscount = discount
		}
	}

	if best != nil && bestDiscount.IsZero() {
		return nil, nil
	}

	return best, nil
}

// ApplyDiscount returns (discountedPrice, discountAmount) for a price.
func (s *resolver) ApplyDiscount(rule model.OfferRule, price decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	amount := rule.Discount(price)
	return price.Sub(amount), amount
}
