package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the checkout request. Pricing and coupon come
// from the server-side cart and session, never from the client.
type PlaceOrderRequest struct {
	PaymentMethod   string `json:"payment_method"`
	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingPincode string `json:"shipping_pincode"`
}

func (r PlaceOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PaymentMethod, validation.Required,
			validation.In(string(PaymentMethodCOD), string(PaymentMethodRazorpay), string(PaymentMethodWallet))),
		validation.Field(&r.ShippingName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.ShippingPhone, validation.Required, validation.Length(8, 15)),
		validation.Field(&r.ShippingAddress, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.ShippingCity, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.ShippingPincode, validation.Required, validation.Length(4, 10)),
	)
}

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if !OrderStatus(s).IsValid() {
				return errors.New("unknown order status")
			}
			return nil
		})),
		validation.Field(&r.Notes, validation.Length(0, 1000)),
	)
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (r CancelOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reason, validation.Required, validation.Length(3, 500)),
	)
}

// CancelItemsRequest cancels a subset of lines in one operation.
type CancelItemsRequest struct {
	ItemIDs []string `json:"item_ids"`
	Reason  string   `json:"reason"`
}

func (r CancelItemsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemIDs, validation.Required, validation.Length(1, 100),
			validation.Each(is.UUIDv4)),
		validation.Field(&r.Reason, validation.Required, validation.Length(3, 500)),
	)
}

func (r CancelItemsRequest) ItemUUIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.ItemIDs))
	for _, raw := range r.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type RequestReturnRequest struct {
	ItemID *string `json:"item_id,omitempty"`
	Reason string  `json:"reason"`
}

func (r RequestReturnRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemID, is.UUIDv4),
		validation.Field(&r.Reason, validation.Required, validation.Length(3, 500)),
	)
}

func (r RequestReturnRequest) ItemUUID() *uuid.UUID {
	if r.ItemID == nil {
		return nil
	}
	id, err := uuid.Parse(*r.ItemID)
	if err != nil {
		return nil
	}
	return &id
}

type RejectReturnRequest struct {
	Reason string `json:"reason"`
}

func (r RejectReturnRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reason, validation.Required, validation.Length(3, 500)),
	)
}

type ReactivateRequest struct {
	TargetStatus string `json:"target_status"`
}

func (r ReactivateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TargetStatus, validation.Required,
			validation.In(string(OrderStatusPending), string(OrderStatusConfirmed), string(OrderStatusProcessing))),
	)
}

// OrderResponse is the detail view: the stored snapshot plus the derived
// display status and live active totals.
type OrderResponse struct {
	ID          uuid.UUID  `json:"id"`
	OrderNumber string     `json:"order_number"`
	UserID      uuid.UUID  `json:"user_id"`
	CouponID    *uuid.UUID `json:"coupon_id,omitempty"`

	Items []OrderItem `json:"items"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	ShippingFee    decimal.Decimal `json:"shipping_fee"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`

	ActiveSubtotal decimal.Decimal `json:"active_subtotal"`
	ActiveTax      decimal.Decimal `json:"active_tax"`
	ActiveShipping decimal.Decimal `json:"active_shipping"`
	ActiveTotal    decimal.Decimal `json:"active_total"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`

	Status        OrderStatus   `json:"status"`
	DisplayStatus DisplayStatus `json:"display_status"`

	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingPincode string `json:"shipping_pincode"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	StatusHistory []OrderStatusHistory `json:"status_history,omitempty"`
}

// ToResponse assembles the detail view from an order and its items.
func (o *Order) ToResponse(items []OrderItem, couponDiscount decimal.Decimal) *OrderResponse {
	active := ActiveTotals(items, couponDiscount)
	counts := CountItemStatuses(items)

	return &OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		CouponID:        o.CouponID,
		Items:           items,
		Subtotal:        o.Subtotal,
		TaxAmount:       o.TaxAmount,
		ShippingFee:     o.ShippingFee,
		DiscountAmount:  o.DiscountAmount,
		Total:           o.Total,
		ActiveSubtotal:  active.Subtotal,
		ActiveTax:       active.Tax,
		ActiveShipping:  active.Shipping,
		ActiveTotal:     active.Total,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		PaidAt:          o.PaidAt,
		Status:          o.Status,
		DisplayStatus:   DeriveDisplayStatus(o.Status, counts),
		ShippingName:    o.ShippingName,
		ShippingPhone:   o.ShippingPhone,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingPincode: o.ShippingPincode,
		DeliveredAt:     o.DeliveredAt,
		CancelledAt:     o.CancelledAt,
		CreatedAt:       o.CreatedAt,
	}
}

// OrderListResponse represents simplified order for list views
type OrderListResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	DisplayStatus DisplayStatus   `json:"display_status"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     time.Time       `json:"created_at"`
}
