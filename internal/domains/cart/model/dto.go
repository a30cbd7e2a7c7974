package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID string  `json:"product_id"`
	VariantID *string `json:"variant_id,omitempty"`
	Quantity  int     `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, is.UUIDv4),
		validation.Field(&r.VariantID, is.UUIDv4),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(99)),
	)
}

func (r AddItemRequest) ProductUUID() uuid.UUID {
	id, _ := uuid.Parse(r.ProductID)
	return id
}

func (r AddItemRequest) VariantUUID() *uuid.UUID {
	if r.VariantID == nil {
		return nil
	}
	id, err := uuid.Parse(*r.VariantID)
	if err != nil {
		return nil
	}
	return &id
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(99)),
	)
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (r ApplyCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(1, 50)),
	)
}
