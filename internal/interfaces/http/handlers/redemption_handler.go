package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"discount-club.backend/internal/interfaces/http/response"
	"discount-club.backend/internal/usecases"
)

// RedemptionHandler handles in-person redemption confirmation
type RedemptionHandler struct {
	redemptionUsecase *usecases.RedemptionUsecase
}

// NewRedemptionHandler creates a new redemption handler
func NewRedemptionHandler(redemptionUsecase *usecases.RedemptionUsecase) *RedemptionHandler {
	return &RedemptionHandler{redemptionUsecase: redemptionUsecase}
}

// Confirm confirms the calling merchant's portion of an order
// POST /api/v1/redemptions/:code/confirm
func (h *RedemptionHandler) Confirm(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.redemptionUsecase.Confirm(c.Request.Context(), scope, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
