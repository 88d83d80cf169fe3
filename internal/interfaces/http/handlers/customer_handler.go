package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"discount-club.backend/internal/domain/entities"
	"discount-club.backend/internal/interfaces/http/response"
	"discount-club.backend/internal/usecases"
	"discount-club.backend/pkg/utils"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerUsecase *usecases.CustomerUsecase
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerUsecase *usecases.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase}
}

// Create creates a customer, subject to the tenant's plan quota
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var input entities.CustomerCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	customer, err := h.customerUsecase.Create(c.Request.Context(), scope, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, customer)
}

// List lists the tenant's customers
// GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	customers, total, err := h.customerUsecase.List(c.Request.Context(), scope, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns one customer
// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	customer, err := h.customerUsecase.Get(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}
