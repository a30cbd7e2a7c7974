package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchitup-backend/internal/domains/cart/model"
	"watchitup-backend/internal/domains/cart/session"
	catalogModel "watchitup-backend/internal/domains/catalog/model"
	couponModel "watchitup-backend/internal/domains/coupon/model"
	offerModel "watchitup-backend/internal/domains/offer/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =====================================================
// FAKES
// =====================================================

type fakeCartRepo struct {
	carts map[uuid.UUID]*model.Cart // by user ID
	items map[uuid.UUID][]model.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: make(map[uuid.UUID]*model.Cart),
		items: make(map[uuid.UUID][]model.CartItem),
	}
}

func (f *fakeCartRepo) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	if c, ok := f.carts[userID]; ok {
		return c, nil
	}
	c := &model.Cart{ID: uuid.New(), UserID: userID}
	f.carts[userID] = c
	return c, nil
}

func (f *fakeCartRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	c, ok := f.carts[userID]
	if !ok {
		return nil, model.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeCartRepo) GetItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItem, error) {
	return f.items[cartID], nil
}

func (f *fakeCartRepo) GetItemByID(ctx context.Context, itemID uuid.UUID) (*model.CartItem, error) {
	for _, items := range f.items {
		for i := range items {
			if items[i].ID == itemID {
				return &items[i], nil
			}
		}
	}
	return nil, model.ErrCartItemNotFound
}

func (f *fakeCartRepo) UpsertItem(ctx context.Context, item *model.CartItem) error {
	items := f.items[item.CartID]
	for i := range items {
		if items[i].ProductID == item.ProductID && uuidPtrEqual(items[i].VariantID, item.VariantID) {
			items[i].Quantity += item.Quantity
			return nil
		}
	}
	f.items[item.CartID] = append(items, *item)
	return nil
}

func (f *fakeCartRepo) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	for cartID, items := range f.items {
		for i := range items {
			if items[i].ID == itemID {
				f.items[cartID][i].Quantity = quantity
				return nil
			}
		}
	}
	return model.ErrCartItemNotFound
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	for cartID, items := range f.items {
		for i := range items {
			if items[i].ID == itemID {
				f.items[cartID] = append(items[:i], items[i+1:]...)
				return nil
			}
		}
	}
	return model.ErrCartItemNotFound
}

func (f *fakeCartRepo) ClearItemsWithTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	f.items[cartID] = nil
	return nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type fakeCatalog struct {
	products map[uuid.UUID]*catalogModel.Product
	variants map[uuid.UUID][]catalogModel.ProductVariant // by product ID
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: make(map[uuid.UUID]*catalogModel.Product),
		variants: make(map[uuid.UUID][]catalogModel.ProductVariant),
	}
}

func (f *fakeCatalog) GetProductByID(ctx context.Context, id uuid.UUID) (*catalogModel.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalogModel.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeCatalog) GetVariantByID(ctx context.Context, id uuid.UUID) (*catalogModel.ProductVariant, error) {
	for _, vs := range f.variants {
		for i := range vs {
			if vs[i].ID == id {
				return &vs[i], nil
			}
		}
	}
	return nil, catalogModel.ErrVariantNotFound
}

func (f *fakeCatalog) GetVariantsByProductID(ctx context.Context, productID uuid.UUID) ([]catalogModel.ProductVariant, error) {
	return f.variants[productID], nil
}

func (f *fakeCatalog) GetCategoryByID(ctx context.Context, id uuid.UUID) (*catalogModel.Category, error) {
	return nil, catalogModel.ErrCategoryNotFound
}

// fakeOffers hands back a fixed offer per product and applies its rule
// the same way the real resolver does.
type fakeOffers struct {
	byProduct map[uuid.UUID]*offerModel.ResolvedOffer
}

func (f *fakeOffers) ResolveBestOffer(ctx context.Context, product *catalogModel.Product, variants []catalogModel.ProductVariant) (*offerModel.ResolvedOffer, error) {
	return f.byProduct[product.ID], nil
}

func (f *fakeOffers) ApplyDiscount(rule offerModel.OfferRule, price decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	discount := rule.Discount(price)
	return price.Sub(discount), discount
}

type fakeCoupons struct {
	coupons map[string]*couponModel.Coupon
}

func (f *fakeCoupons) Validate(ctx context.Context, code string, userID uuid.UUID, cartSubtotal decimal.Decimal) (*couponModel.Coupon, error) {
	c, ok := f.coupons[couponModel.NormalizeCode(code)]
	if !ok {
		return nil, couponModel.ErrCouponNotFound
	}
	if cartSubtotal.LessThan(c.MinimumAmount) {
		return nil, couponModel.ErrCouponBelowMinimum
	}
	return c, nil
}

func (f *fakeCoupons) Redeem(ctx context.Context, tx pgx.Tx, coupon *couponModel.Coupon, userID, orderID uuid.UUID, discount decimal.Decimal) error {
	return nil
}

func (f *fakeCoupons) Create(ctx context.Context, req *couponModel.CreateCouponRequest) (*couponModel.Coupon, error) {
	return nil, nil
}

func (f *fakeCoupons) Deactivate(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeSessions struct {
	byUser map[uuid.UUID]*session.Checkout
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byUser: make(map[uuid.UUID]*session.Checkout)}
}

func (f *fakeSessions) Get(ctx context.Context, userID uuid.UUID) (*session.Checkout, error) {
	return f.byUser[userID], nil
}

func (f *fakeSessions) SetCoupon(ctx context.Context, userID uuid.UUID, code string) error {
	sess := f.byUser[userID]
	if sess == nil {
		sess = &session.Checkout{ID: uuid.New(), UserID: userID}
		f.byUser[userID] = sess
	}
	sess.CouponCode = code
	return nil
}

func (f *fakeSessions) ClearCoupon(ctx context.Context, userID uuid.UUID) error {
	if sess := f.byUser[userID]; sess != nil {
		sess.CouponCode = ""
	}
	return nil
}

// =====================================================
// HARNESS
// =====================================================

type cartHarness struct {
	repo     *fakeCartRepo
	catalog  *fakeCatalog
	offers   *fakeOffers
	coupons  *fakeCoupons
	sessions *fakeSessions
	svc      ServiceInterface
}

func newCartHarness() *cartHarness {
	repo := newFakeCartRepo()
	catalog := newFakeCatalog()
	offers := &fakeOffers{byProduct: make(map[uuid.UUID]*offerModel.ResolvedOffer)}
	coupons := &fakeCoupons{coupons: make(map[string]*couponModel.Coupon)}
	sessions := newFakeSessions()
	return &cartHarness{
		repo:     repo,
		catalog:  catalog,
		offers:   offers,
		coupons:  coupons,
		sessions: sessions,
		svc:      NewService(repo, catalog, offers, coupons, sessions),
	}
}

func (h *cartHarness) seedProduct(price string, stock int) *catalogModel.Product {
	p := &catalogModel.Product{
		ID:            uuid.New(),
		Name:          "Diver 200m",
		CategoryID:    uuid.New(),
		BasePrice:     d(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	h.catalog.products[p.ID] = p
	return p
}

func (h *cartHarness) seedCartLine(userID uuid.UUID, productID uuid.UUID, variantID *uuid.UUID, qty int) uuid.UUID {
	cart, _ := h.repo.GetOrCreateByUserID(context.Background(), userID)
	item := model.CartItem{
		ID:        uuid.New(),
		CartID:    cart.ID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  qty,
	}
	h.repo.items[cart.ID] = append(h.repo.items[cart.ID], item)
	return item.ID
}

func (h *cartHarness) seedCoupon(code, kind, value, minimum string) {
	h.coupons.coupons[code] = &couponModel.Coupon{
		ID:            uuid.New(),
		Code:          code,
		DiscountType:  kind,
		DiscountValue: d(value),
		MinimumAmount: d(minimum),
		IsActive:      true,
	}
}

// =====================================================
// PRICING
// =====================================================

func TestGetPricedCartAppliesBestOffer(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("1000", 5)
	h.seedCartLine(userID, product.ID, nil, 1)
	h.offers.byProduct[product.ID] = &offerModel.ResolvedOffer{
		OfferID: uuid.New(),
		Name:    "Summer Sale",
		Source:  offerModel.OfferSourceProduct,
		Rule: offerModel.OfferRule{
			DiscountType:  offerModel.DiscountTypePercentage,
			DiscountValue: d("10"),
			IsActive:      true,
		},
	}

	priced, err := h.svc.GetPricedCart(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, priced.Items, 1)
	line := priced.Items[0]
	assert.True(t, line.UnitPrice.Equal(d("1000")))
	assert.True(t, line.DiscountedUnit.Equal(d("900")))
	assert.True(t, line.UnitDiscount.Equal(d("100")))
	require.NotNil(t, line.OfferName)
	assert.Equal(t, "Summer Sale", *line.OfferName)
	assert.True(t, line.InStock)

	assert.True(t, priced.Totals.Subtotal.Equal(d("900")))
	assert.True(t, priced.Totals.Tax.Equal(d("162")))
	assert.True(t, priced.Totals.Shipping.IsZero(), "free shipping above threshold")
	assert.True(t, priced.Totals.Total.Equal(d("1062")))
}

func TestGetPricedCartVariantPriceAndStock(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("1000", 5)
	variant := catalogModel.ProductVariant{
		ID:            uuid.New(),
		ProductID:     product.ID,
		Name:          "Steel Bracelet",
		SKU:           "DIV-STL",
		Price:         d("1200"),
		StockQuantity: 0,
		IsActive:      true,
	}
	h.catalog.variants[product.ID] = []catalogModel.ProductVariant{variant}
	h.seedCartLine(userID, product.ID, &variant.ID, 2)

	priced, err := h.svc.GetPricedCart(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, priced.Items, 1)
	line := priced.Items[0]
	assert.True(t, line.UnitPrice.Equal(d("1200")), "variant price wins over base price")
	assert.True(t, line.LineTotal.Equal(d("2400")))
	assert.False(t, line.InStock, "stock comes from the variant")
	require.NotNil(t, line.VariantName)
	assert.Equal(t, "Steel Bracelet", *line.VariantName)
}

// =====================================================
// COUPONS
// =====================================================

func TestApplyCouponPinsSessionAndDiscounts(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("1000", 5)
	h.seedCartLine(userID, product.ID, nil, 1)
	h.seedCoupon("SAVE100", couponModel.DiscountTypeFixed, "100", "500")

	priced, err := h.svc.ApplyCoupon(context.Background(), userID, "save100")
	require.NoError(t, err)

	require.NotNil(t, priced.CouponCode)
	assert.Equal(t, "SAVE100", *priced.CouponCode)
	assert.True(t, priced.CouponAmount.Equal(d("100")))
	assert.True(t, priced.Totals.Tax.Equal(d("180")), "tax derives from the pre-coupon subtotal")
	assert.True(t, priced.Totals.Total.Equal(d("1080")))

	sess := h.sessions.byUser[userID]
	require.NotNil(t, sess)
	assert.Equal(t, "SAVE100", sess.CouponCode)
}

func TestApplyCouponBelowMinimumRejected(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("400", 5)
	h.seedCartLine(userID, product.ID, nil, 1)
	h.seedCoupon("SAVE100", couponModel.DiscountTypeFixed, "100", "500")

	_, err := h.svc.ApplyCoupon(context.Background(), userID, "SAVE100")
	require.ErrorIs(t, err, couponModel.ErrCouponBelowMinimum)
	assert.Nil(t, h.sessions.byUser[userID])
}

func TestPriceDropsStaleSessionCoupon(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("400", 5)
	h.seedCartLine(userID, product.ID, nil, 1)
	h.seedCoupon("SAVE100", couponModel.DiscountTypeFixed, "100", "500")

	// The coupon got pinned while the cart was richer; by pricing time
	// the subtotal has dropped below its minimum.
	require.NoError(t, h.sessions.SetCoupon(context.Background(), userID, "SAVE100"))

	priced, err := h.svc.GetPricedCart(context.Background(), userID)
	require.NoError(t, err)

	assert.Nil(t, priced.CouponCode)
	assert.True(t, priced.CouponAmount.IsZero())
	assert.Equal(t, "", h.sessions.byUser[userID].CouponCode, "stale coupon cleared from the session")
	assert.True(t, priced.Totals.Total.Equal(d("522")), "400 + 72 tax + 50 shipping")
}

// =====================================================
// LINE MANAGEMENT
// =====================================================

func TestUpdateItemQuantityBounds(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("1000", 5)
	itemID := h.seedCartLine(userID, product.ID, nil, 1)

	_, err := h.svc.UpdateItemQuantity(context.Background(), userID, itemID, 0)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = h.svc.UpdateItemQuantity(context.Background(), userID, itemID, 100)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	priced, err := h.svc.UpdateItemQuantity(context.Background(), userID, itemID, 3)
	require.NoError(t, err)
	assert.True(t, priced.Totals.Subtotal.Equal(d("3000")))
}

func TestRemoveItemRejectsForeignLine(t *testing.T) {
	h := newCartHarness()
	owner := uuid.New()
	other := uuid.New()
	product := h.seedProduct("1000", 5)
	itemID := h.seedCartLine(owner, product.ID, nil, 1)
	h.seedCartLine(other, product.ID, nil, 1)

	_, err := h.svc.RemoveItem(context.Background(), other, itemID)
	assert.ErrorIs(t, err, model.ErrCartItemNotFound)

	_, err = h.svc.RemoveItem(context.Background(), owner, itemID)
	require.NoError(t, err)
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	h := newCartHarness()
	userID := uuid.New()
	product := h.seedProduct("1000", 5)
	product.IsActive = false

	_, err := h.svc.AddItem(context.Background(), userID, model.AddItemRequest{
		ProductID: product.ID.String(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, catalogModel.ErrProductInactive)
}
