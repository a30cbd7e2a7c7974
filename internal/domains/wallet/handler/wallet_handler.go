package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"watchitup-backend/internal/domains/wallet/model"
	"watchitup-backend/internal/domains/wallet/service"
	"watchitup-backend/internal/shared/middleware"
	"watchitup-backend/internal/shared/response"
)

type WalletHandler struct {
	walletService service.ServiceInterface
}

func NewWalletHandler(walletService service.ServiceInterface) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetBalance handles GET /wallet
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Something went wrong")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}

// ListTransactions handles GET /wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, err := h.walletService.ListTransactions(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(c, "Something went wrong")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, transactions, response.NewMeta(page, limit, 0))
}

// Adjust handles POST /admin/wallets/:userId/adjust
func (h *WalletHandler) Adjust(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req model.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid adjustment", err.Error())
		return
	}

	balance, err := h.walletService.Adjust(c.Request.Context(), userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInsufficientBalance):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, model.ErrInvalidAmount):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "Something went wrong")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}
