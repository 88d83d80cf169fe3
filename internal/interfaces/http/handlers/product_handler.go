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

// ProductHandler handles product endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// Create creates a product for a merchant, subject to the tenant's plan quota
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.ProductCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), scope, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// List lists the tenant's products
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	scope, err := resolveScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	products, total, err := h.productUsecase.List(c.Request.Context(), scope, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products":   products,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
