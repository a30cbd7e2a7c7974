package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	"watchitup-backend/internal/domains/order/model"
	"watchitup-backend/internal/domains/order/service"
	walletModel "watchitup-backend/internal/domains/wallet/model"
	"watchitup-backend/internal/shared/middleware"
	"watchitup-backend/internal/shared/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order request", err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrderDetail(c.Request.Context(), orderID, userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), userID, status, page, limit)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, orders, response.NewMeta(page, limit, total))
}

// ListAllOrders handles GET /admin/orders
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	orders, total, err := h.orderService.ListAllOrders(c.Request.Context(), status, page, limit)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, orders, response.NewMeta(page, limit, total))
}

// UpdateStatus handles POST /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status", err.Error())
		return
	}

	changedBy := adminID(c)
	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status), changedBy, req.Notes)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// CancelOrder handles POST /orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid cancellation", err.Error())
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), orderID, userID, req.Reason)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// CancelItems handles POST /orders/:id/cancel-items
func (h *OrderHandler) CancelItems(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.CancelItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid cancellation", err.Error())
		return
	}

	itemIDs, err := req.ItemUUIDs()
	if err != nil {
		response.BadRequest(c, "Invalid item ID in request")
		return
	}

	order, err := h.orderService.CancelItems(c.Request.Context(), orderID, userID, itemIDs, req.Reason)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// RequestReturn handles POST /orders/:id/return
func (h *OrderHandler) RequestReturn(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.RequestReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid return request", err.Error())
		return
	}

	ret, err := h.orderService.RequestReturn(c.Request.Context(), orderID, userID, req.ItemUUID(), req.Reason)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ret)
}

// ApproveReturn handles POST /admin/returns/:id/approve
func (h *OrderHandler) ApproveReturn(c *gin.Context) {
	returnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	ret, err := h.orderService.ApproveReturn(c.Request.Context(), returnID, adminID(c))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ret)
}

// RejectReturn handles POST /admin/returns/:id/reject
func (h *OrderHandler) RejectReturn(c *gin.Context) {
	returnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	var req model.RejectReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason required", err.Error())
		return
	}

	ret, err := h.orderService.RejectReturn(c.Request.Context(), returnID, req.Reason, adminID(c))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ret)
}

// CompleteReturn handles POST /admin/returns/:id/complete
func (h *OrderHandler) CompleteReturn(c *gin.Context) {
	returnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	ret, err := h.orderService.CompleteReturn(c.Request.Context(), returnID, adminID(c))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ret)
}

// Reactivate handles POST /admin/orders/:id/reactivate
func (h *OrderHandler) Reactivate(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reactivation target", err.Error())
		return
	}

	order, err := h.orderService.Reactivate(c.Request.Context(), orderID, model.OrderStatus(req.TargetStatus), adminID(c))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

func adminID(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.UserID(c); ok {
		return &id
	}
	return nil
}

func (h *OrderHandler) mapError(c *gin.Context, err error) {
	var orderErr *model.OrderError
	if errors.As(err, &orderErr) {
		switch orderErr.Code {
		case model.ErrCodeOrderNotFound, model.ErrCodeItemNotFound, model.ErrCodeReturnNotFound:
			response.ErrorResponse(c, http.StatusNotFound, orderErr.Code, orderErr.Message)
		case model.ErrCodeUnauthorized:
			response.ErrorResponse(c, http.StatusForbidden, orderErr.Code, orderErr.Message)
		case model.ErrCodeInsufficientStock, model.ErrCodeReturnAlreadyOpen:
			response.ErrorResponse(c, http.StatusConflict, orderErr.Code, orderErr.Message)
		case model.ErrCodeCartEmpty, model.ErrCodeInvalidPayment, model.ErrCodeCouponInvalid:
			response.ErrorResponse(c, http.StatusBadRequest, orderErr.Code, orderErr.Message)
		default:
			response.ErrorResponse(c, http.StatusUnprocessableEntity, orderErr.Code, orderErr.Message)
		}
		return
	}

	var transitionErr *model.InvalidTransitionError
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(c, "Order not found")
	case errors.Is(err, model.ErrReturnNotFound):
		response.NotFound(c, "Return request not found")
	case errors.As(err, &transitionErr):
		response.UnprocessableEntity(c, transitionErr.Error())
	case errors.Is(err, model.ErrVersionMismatch):
		response.Conflict(c, "Order was modified concurrently, retry")
	case errors.Is(err, walletModel.ErrInsufficientBalance):
		response.UnprocessableEntity(c, "Insufficient wallet balance")
	case errors.Is(err, inventoryModel.ErrInsufficientStock):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
