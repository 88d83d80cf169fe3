package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"discount-club.backend/internal/interfaces/http/response"
	"discount-club.backend/internal/usecases"
	"discount-club.backend/pkg/utils"
)

// OrderHandler handles checkout and order lookup endpoints
type OrderHandler struct {
	checkoutUsecase *usecases.CheckoutUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutUsecase *usecases.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{checkoutUsecase: checkoutUsecase}
}

// Checkout converts the customer's cart into an order
// POST /api/v1/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	customerID, err := resolveCustomerID(c, scope)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.checkoutUsecase.Checkout(c.Request.Context(), scope, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// GetByCode resolves an order from its redemption code
// GET /api/v1/orders/:code
func (h *OrderHandler) GetByCode(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.checkoutUsecase.GetByCode(c.Request.Context(), scope, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// List lists the customer's orders
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	customerID, err := resolveCustomerID(c, scope)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	orders, total, err := h.checkoutUsecase.ListByCustomer(c.Request.Context(), scope, customerID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
