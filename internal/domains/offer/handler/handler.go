package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"watchitup-backend/internal/domains/offer/model"
	"watchitup-backend/internal/domains/offer/repository"
	"watchitup-backend/internal/shared/response"
)

// OfferHandler exposes thin admin CRUD for offers.
type OfferHandler struct {
	offerRepo repository.RepositoryInterface
}

func NewOfferHandler(offerRepo repository.RepositoryInterface) *OfferHandler {
	return &OfferHandler{offerRepo: offerRepo}
}

func (h *OfferHandler) Create(c *gin.Context) {
	var req model.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid offer", err.Error())
		return
	}

	rule, err := req.Rule()
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid offer rule", err.Error())
		return
	}

	switch {
	case req.ProductID != "":
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product_id")
			return
		}
		offer := &model.ProductOffer{
			ID:        uuid.New(),
			ProductID: productID,
			Name:      req.Name,
			OfferRule: rule,
		}
		if err := h.offerRepo.CreateProductOffer(c.Request.Context(), offer); err != nil {
			response.InternalServerError(c, "Failed to create offer")
			return
		}
		response.Success(c, http.StatusCreated, offer)

	case req.CategoryID != "":
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category_id")
			return
		}
		offer := &model.CategoryOffer{
			ID:         uuid.New(),
			CategoryID: categoryID,
			Name:       req.Name,
			OfferRule:  rule,
		}
		if err := h.offerRepo.CreateCategoryOffer(c.Request.Context(), offer); err != nil {
			response.InternalServerError(c, "Failed to create offer")
			return
		}
		response.Success(c, http.StatusCreated, offer)

	default:
		response.BadRequest(c, "Either product_id or category_id is required")
	}
}

func (h *OfferHandler) DeactivateProductOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid offer ID")
		return
	}

	if err := h.offerRepo.DeactivateProductOffer(c.Request.Context(), id); err != nil {
		if err == model.ErrOfferNotFound {
			response.NotFound(c, "Offer not found")
			return
		}
		response.InternalServerError(c, "Failed to deactivate offer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *OfferHandler) DeactivateCategoryOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid offer ID")
		return
	}

	if err := h.offerRepo.DeactivateCategoryOffer(c.Request.Context(), id); err != nil {
		if err == model.ErrOfferNotFound {
			response.NotFound(c, "Offer not found")
			return
		}
		response.InternalServerError(c, "Failed to deactivate offer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}
