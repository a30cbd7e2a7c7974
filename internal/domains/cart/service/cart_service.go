package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/domains/cart/model"
	"watchitup-backend/internal/domains/cart/repository"
	catalogModel "watchitup-backend/internal/domains/catalog/model"
	catalogRepo "watchitup-backend/internal/domains/catalog/repository"
	couponService "watchitup-backend/internal/domains/coupon/service"
	offerService "watchitup-backend/internal/domains/offer/service"
	"watchitup-backend/internal/shared/pricing"
	"watchitup-backend/pkg/logger"
)

type cartService struct {
	cartRepo    repository.RepositoryInterface
	catalogRepo catalogRepo.RepositoryInterface
	offers      offerService.ServiceInterface
	coupons     couponService.ServiceInterface
	sessions    SessionStore
}

func NewService(
	cartRepo repository.RepositoryInterface,
	catalog catalogRepo.RepositoryInterface,
	offers offerService.ServiceInterface,
	coupons couponService.ServiceInterface,
	sessions SessionStore,
) ServiceInterface {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalog,
		offers:      offers,
		coupons:     coupons,
		sessions:    sessions,
	}
}

// GetPricedCart implements ServiceInterface.GetPricedCart
func (s *cartService) GetPricedCart(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.price(ctx, userID, cart)
}

// AddItem implements ServiceInterface.AddItem
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req model.AddItemRequest) (*model.PricedCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.GetProductByID(ctx, req.ProductUUID())
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, catalogModel.ErrProductInactive
	}

	variantID := req.VariantUUID()
	if variantID != nil {
		variant, err := s.catalogRepo.GetVariantByID(ctx, *variantID)
		if err != nil {
			return nil, err
		}
		if variant.ProductID != product.ID || !variant.IsActive {
			return nil, catalogModel.ErrVariantNotFound
		}
	}

	item := &model.CartItem{
		ID:        uuid.New(),
		CartID:    cart.ID,
		ProductID: product.ID,
		VariantID: variantID,
		Quantity:  req.Quantity,
	}
	if err := s.cartRepo.UpsertItem(ctx, item); err != nil {
		return nil, err
	}

	return s.price(ctx, userID, cart)
}

// UpdateItemQuantity implements ServiceInterface.UpdateItemQuantity
func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*model.PricedCart, error) {
	if quantity < 1 || quantity > 99 {
		return nil, model.ErrInvalidQuantity
	}

	cart, err := s.ownedCartItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}

	return s.price(ctx, userID, cart)
}

// RemoveItem implements ServiceInterface.RemoveItem
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.PricedCart, error) {
	cart, err := s.ownedCartItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}

	return s.price(ctx, userID, cart)
}

// ApplyCoupon implements ServiceInterface.ApplyCoupon
func (s *cartService) ApplyCoupon(ctx context.Context, userID uuid.UUID, code string) (*model.PricedCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Validation runs against the post-offer subtotal, not list prices.
	subtotal, _, err := s.priceLines(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	coupon, err := s.coupons.Validate(ctx, code, userID, subtotal)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetCoupon(ctx, userID, coupon.Code); err != nil {
		return nil, fmt.Errorf("failed to store coupon in session: %w", err)
	}

	return s.price(ctx, userID, cart)
}

// RemoveCoupon implements ServiceInterface.RemoveCoupon
func (s *cartService) RemoveCoupon(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.ClearCoupon(ctx, userID); err != nil {
		return nil, err
	}

	return s.price(ctx, userID, cart)
}

func (s *cartService) ownedCartItem(ctx context.Context, userID, itemID uuid.UUID) (*model.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, model.ErrCartItemNotFound
	}

	return cart, nil
}

// priceLines prices every line and returns the post-offer subtotal.
func (s *cartService) priceLines(ctx context.Context, cartID uuid.UUID) (decimal.Decimal, []model.PricedItem, error) {
	items, err := s.cartRepo.GetItems(ctx, cartID)
	if err != nil {
		return decimal.Zero, nil, err
	}

	subtotal := decimal.Zero
	priced := make([]model.PricedItem, 0, len(items))

	for _, item := range items {
		product, err := s.catalogRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, nil, err
		}

		variants, err := s.catalogRepo.GetVariantsByProductID(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, nil, err
		}

		var variant *catalogModel.ProductVariant
		if item.VariantID != nil {
			for i := range variants {
				if variants[i].ID == *item.VariantID {
					variant = &variants[i]
					break
				}
			}
			if variant == nil {
				return decimal.Zero, nil, catalogModel.ErrVariantNotFound
			}
		}

		unitPrice := product.UnitPrice(variant)
		discountedUnit := unitPrice
		unitDiscount := decimal.Zero
		var offerName *string

		offer, err := s.offers.ResolveBestOffer(ctx, product, variants)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if offer != nil {
			discountedUnit, unitDiscount = s.offers.ApplyDiscount(offer.Rule, unitPrice)
			name := offer.Name
			offerName = &name
		}

		inStock := product.IsInStock()
		if variant != nil {
			inStock = variant.StockQuantity > 0
		}

		lineTotal := discountedUnit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		pricedItem := model.PricedItem{
			ItemID:         item.ID,
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			ProductName:    product.Name,
			Quantity:       item.Quantity,
			UnitPrice:      unitPrice,
			DiscountedUnit: discountedUnit,
			UnitDiscount:   unitDiscount,
			OfferName:      offerName,
			LineTotal:      lineTotal,
			InStock:        inStock,
		}
		if variant != nil {
			pricedItem.VariantName = &variant.Name
		}
		priced = append(priced, pricedItem)
	}

	return subtotal, priced, nil
}

// price builds the full quote: lines, session coupon, order totals.
// A session coupon that no longer validates (window closed, subtotal
// dropped below its minimum) is silently dropped from the session.
func (s *cartService) price(ctx context.Context, userID uuid.UUID, cart *model.Cart) (*model.PricedCart, error) {
	subtotal, priced, err := s.priceLines(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	couponAmount := decimal.Zero
	var couponCode *string

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess != nil && sess.CouponCode != "" {
		coupon, err := s.coupons.Validate(ctx, sess.CouponCode, userID, subtotal)
		if err == nil {
			couponAmount = coupon.CalculateDiscount(subtotal)
			couponCode = &coupon.Code
		} else {
			logger.Warn("dropping invalid session coupon", map[string]interface{}{
				"user_id": userID.String(),
				"code":    sess.CouponCode,
				"reason":  err.Error(),
			})
			if clearErr := s.sessions.ClearCoupon(ctx, userID); clearErr != nil {
				return nil, clearErr
			}
		}
	}

	return &model.PricedCart{
		CartID:       cart.ID,
		Items:        priced,
		CouponCode:   couponCode,
		CouponAmount: couponAmount,
		Totals:       pricing.Compute(subtotal, couponAmount),
	}, nil
}
