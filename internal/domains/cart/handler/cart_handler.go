package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"watchitup-backend/internal/domains/cart/model"
	"watchitup-backend/internal/domains/cart/service"
	catalogModel "watchitup-backend/internal/domains/catalog/model"
	couponModel "watchitup-backend/internal/domains/coupon/model"
	"watchitup-backend/internal/shared/middleware"
	"watchitup-backend/internal/shared/response"
)

type CartHandler struct {
	cartService service.ServiceInterface
}

func NewCartHandler(cartService service.ServiceInterface) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart returns the priced cart for the authenticated user.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cartService.GetPricedCart(c.Request.Context(), userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid cart item", err.Error())
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid quantity", err.Error())
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(c.Request.Context(), userID, itemID, req.Quantity)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid coupon code", err.Error())
		return
	}

	cart, err := h.cartService.ApplyCoupon(c.Request.Context(), userID, req.Code)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cartService.RemoveCoupon(c.Request.Context(), userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrCartItemNotFound),
		errors.Is(err, model.ErrCartNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrInvalidQuantity):
		response.BadRequest(c, err.Error())
	case errors.Is(err, catalogModel.ErrProductNotFound),
		errors.Is(err, catalogModel.ErrVariantNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, catalogModel.ErrProductInactive):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, couponModel.ErrCouponNotFound):
		response.NotFound(c, "Coupon not found")
	case errors.Is(err, couponModel.ErrCouponNotValid),
		errors.Is(err, couponModel.ErrCouponBelowMinimum),
		errors.Is(err, couponModel.ErrCouponPerUserLimit):
		response.UnprocessableEntity(c, err.Error())
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
