package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents valid payment methods
type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "cod"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodWallet   PaymentMethod = "wallet"
)

func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodCOD, PaymentMethodRazorpay, PaymentMethodWallet:
		return true
	}
	return false
}

func (pm PaymentMethod) String() string {
	return string(pm)
}

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func (ps PaymentStatus) String() string {
	return string(ps)
}

// ItemStatus tracks each line independently of the order status.
type ItemStatus string

const (
	ItemStatusActive    ItemStatus = "active"
	ItemStatusCancelled ItemStatus = "cancelled"
	ItemStatusReturned  ItemStatus = "returned"
)

func (is ItemStatus) IsValid() bool {
	switch is {
	case ItemStatusActive, ItemStatusCancelled, ItemStatusReturned:
		return true
	}
	return false
}

// Order is the pricing snapshot taken at placement plus lifecycle state.
// Stored amounts never change after placement; active amounts are always
// recomputed from the items (see ActiveTotals).
type Order struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OrderNumber string     `json:"order_number" db:"order_number"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	CouponID    *uuid.UUID `json:"coupon_id,omitempty" db:"coupon_id"`

	// Pricing snapshot
	Subtotal       decimal.Decimal `json:"subtotal" db:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount" db:"tax_amount"`
	ShippingFee    decimal.Decimal `json:"shipping_fee" db:"shipping_fee"`
	DiscountAmount decimal.Decimal `json:"discount_amount" db:"discount_amount"`
	Total          decimal.Decimal `json:"total" db:"total"`

	// Payment
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentRef    *string       `json:"payment_ref,omitempty" db:"payment_ref"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" db:"paid_at"`

	// Lifecycle
	Status        OrderStatus `json:"status" db:"status"`
	StockReserved bool        `json:"stock_reserved" db:"stock_reserved"`

	// Shipping address snapshot, decoupled from the user's address book
	ShippingName    string `json:"shipping_name" db:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone" db:"shipping_phone"`
	ShippingAddress string `json:"shipping_address" db:"shipping_address"`
	ShippingCity    string `json:"shipping_city" db:"shipping_city"`
	ShippingPincode string `json:"shipping_pincode" db:"shipping_pincode"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty" db:"delivered_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`

	Version   int       `json:"version" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OrderItem is a line with its snapshot prices and its own status.
type OrderItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	OrderID   uuid.UUID  `json:"order_id" db:"order_id"`
	ProductID uuid.UUID  `json:"product_id" db:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty" db:"variant_id"`

	// Snapshot data
	ProductName string  `json:"product_name" db:"product_name"`
	VariantName *string `json:"variant_name,omitempty" db:"variant_name"`

	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
	Discount  decimal.Decimal `json:"discount" db:"discount"`
	ItemTotal decimal.Decimal `json:"item_total" db:"item_total"`

	Status    ItemStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// IsActive reports whether the line still counts toward the order.
func (oi *OrderItem) IsActive() bool {
	return oi.Status == ItemStatusActive
}

// CancellationType distinguishes whole-order from per-item cancellation.
type CancellationType string

const (
	CancellationFullOrder  CancellationType = "full_order"
	CancellationSingleItem CancellationType = "single_item"
)

// RefundStatus on cancellation and return records.
type RefundStatus string

const (
	RefundStatusPending       RefundStatus = "pending"
	RefundStatusProcessed     RefundStatus = "processed"
	RefundStatusNotApplicable RefundStatus = "not_applicable"
)

// OrderCancellation records one cancellation event and its refund outcome.
type OrderCancellation struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	OrderID      uuid.UUID        `json:"order_id" db:"order_id"`
	ItemID       *uuid.UUID       `json:"item_id,omitempty" db:"item_id"`
	Type         CancellationType `json:"type" db:"type"`
	Reason       string           `json:"reason" db:"reason"`
	RefundAmount decimal.Decimal  `json:"refund_amount" db:"refund_amount"`
	RefundStatus RefundStatus     `json:"refund_status" db:"refund_status"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

// ReturnStatus is the two-phase return workflow state.
type ReturnStatus string

const (
	ReturnStatusPending   ReturnStatus = "pending"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusCompleted ReturnStatus = "completed"
)

// OrderReturn records a return request. Approval and refund are separate
// steps: money moves only when the return completes.
type OrderReturn struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OrderID         uuid.UUID       `json:"order_id" db:"order_id"`
	ItemID          *uuid.UUID      `json:"item_id,omitempty" db:"item_id"`
	Reason          string          `json:"reason" db:"reason"`
	Status          ReturnStatus    `json:"status" db:"status"`
	RejectionReason *string         `json:"rejection_reason,omitempty" db:"rejection_reason"`
	RefundAmount    decimal.Decimal `json:"refund_amount" db:"refund_amount"`
	RefundStatus    RefundStatus    `json:"refund_status" db:"refund_status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// IsOpen reports whether the request is still in flight and blocks a new
// overlapping one.
func (r *OrderReturn) IsOpen() bool {
	return r.Status == ReturnStatusPending || r.Status == ReturnStatusApproved
}

// Overlaps reports whether this return's scope covers any of the goods a
// request for itemID would cover. An order-level return covers every item.
func (r *OrderReturn) Overlaps(itemID *uuid.UUID) bool {
	if r.ItemID == nil || itemID == nil {
		return true
	}
	return *r.ItemID == *itemID
}

// OrderStatusHistory tracks order status changes
type OrderStatusHistory struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	OrderID    uuid.UUID  `json:"order_id" db:"order_id"`
	FromStatus *string    `json:"from_status,omitempty" db:"from_status"`
	ToStatus   string     `json:"to_status" db:"to_status"`
	ChangedBy  *uuid.UUID `json:"changed_by,omitempty" db:"changed_by"`
	Notes      *string    `json:"notes,omitempty" db:"notes"`
	ChangedAt  time.Time  `json:"changed_at" db:"changed_at"`
}

// IsPaid reports whether payment has completed. Refunds are only ever
// credited for paid orders.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusCompleted
}

func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}
