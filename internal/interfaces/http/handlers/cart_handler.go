package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/interfaces/http/response"
	"discount-club.backend/internal/usecases"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartUsecase *usecases.CartUsecase
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartUsecase *usecases.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

// View returns the customer's cart with pricing
// GET /api/v1/cart
func (h *CartHandler) View(c *gin.Context) {
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

	view, err := h.cartUsecase.View(c.Request.Context(), scope, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// AddItem adds a product to the cart
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var input entities.CartAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	if err := h.cartUsecase.AddItem(c.Request.Context(), scope, customerID, input.ProductID, input.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.cartUsecase.View(c.Request.Context(), scope, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

// UpdateQuantity overwrites the quantity of a cart item
// PUT /api/v1/cart/items/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.CartQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	if err := h.cartUsecase.UpdateQuantity(c.Request.Context(), scope, customerID, productID, input.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.cartUsecase.View(c.Request.Context(), scope, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// RemoveItem deletes one product from the cart
// DELETE /api/v1/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

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

	if err := h.cartUsecase.RemoveItem(c.Request.Context(), scope, customerID, productID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear deletes all items from the cart
// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
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

	if err := h.cartUsecase.Clear(c.Request.Context(), scope, customerID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
