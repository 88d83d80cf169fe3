package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/interfaces/http/response"
	"discount-club.backend/internal/usecases"
	"discount-club.backend/pkg/utils"
)

// MerchantHandler handles merchant endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// Create creates a merchant, subject to the tenant's plan quota
// POST /api/v1/merchants
func (h *MerchantHandler) Create(c *gin.Context) {
	var input entities.MerchantCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	merchant, err := h.merchantUsecase.Create(c.Request.Context(), scope, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, merchant)
}

// List lists the tenant's merchants
// GET /api/v1/merchants
func (h *MerchantHandler) List(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	merchants, total, err := h.merchantUsecase.List(c.Request.Context(), scope, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"merchants":  merchants,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Deactivate marks a merchant inactive
// DELETE /api/v1/merchants/:id
func (h *MerchantHandler) Deactivate(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid merchant id"))
		return
	}

	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.merchantUsecase.Deactivate(c.Request.Context(), scope, merchantID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
