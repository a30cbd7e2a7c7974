package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	inventoryModel "watchitup-backend/internal/domains/inventory/model"
	orderModel "watchitup-backend/internal/domains/order/model"
	"watchitup-backend/internal/domains/payment/model"
	"watchitup-backend/internal/domains/payment/service"
	"watchitup-backend/internal/shared/middleware"
	"watchitup-backend/internal/shared/response"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /payments/intents
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request", err.Error())
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), userID, &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, intent)
}

// Webhook handles POST /webhooks/razorpay. The gateway authenticates
// itself through the payload signature, not a user token.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req model.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid webhook body")
		return
	}

	if err := h.paymentService.HandleWebhook(c.Request.Context(), &req); err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *PaymentHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrIntentNotFound), errors.Is(err, orderModel.ErrOrderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrInvalidSignature):
		response.ErrorResponse(c, http.StatusUnauthorized, "INVALID_SIGNATURE", "Webhook signature verification failed")
	case errors.Is(err, model.ErrOrderNotPayable):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, model.ErrGatewayUnavailable):
		response.ErrorResponse(c, http.StatusBadGateway, "GATEWAY_ERROR", "Payment gateway unavailable")
	case errors.Is(err, inventoryModel.ErrInsufficientStock):
		response.Conflict(c, "Stock no longer available for this order")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
