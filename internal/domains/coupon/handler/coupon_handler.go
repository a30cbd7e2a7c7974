package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"watchitup-backend/internal/domains/coupon/model"
	"watchitup-backend/internal/domains/coupon/service"
	"watchitup-backend/internal/shared/response"
)

// CouponHandler exposes the admin coupon endpoints. Customer-facing coupon
// application lives in the cart handler.
type CouponHandler struct {
	couponService service.ServiceInterface
}

func NewCouponHandler(couponService service.ServiceInterface) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Create handles POST /admin/coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var req model.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	coupon, err := h.couponService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCouponCodeTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, model.ErrCouponWindowInvalid):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid coupon", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, coupon)
}

// Deactivate handles DELETE /admin/coupons/:id
func (h *CouponHandler) Deactivate(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.Deactivate(c.Request.Context(), couponID); err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}
