package service

import (
	"context"

	"github.com/shopspring/decimal"

	catalogModel "watchitup-backend/internal/domains/catalog/model"
	"watchitup-backend/internal/domains/offer/model"
)

// ServiceInterface resolves the best applicable offer for a product and
// applies discount rules to prices.
type ServiceInterface interface {
	// ResolveBestOffer returns the valid offer with the largest absolute
	// discount on the product's reference price, or nil when none applies.
	ResolveBestOffer(ctx context.Context, product *catalogModel.Product, variants []catalogModel.ProductVariant) (*model.ResolvedOffer, error)

	// ApplyDiscount returns the discounted price and the discount amount.
	ApplyDiscount(rule model.OfferRule, price decimal.Decimal) (decimal.Decimal, decimal.Decimal)
}
