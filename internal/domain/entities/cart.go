package entities

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one row of a customer's active cart. The unit price is a
// snapshot of the product price at the time the item was last touched.
type CartItem struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenantId"`
	CustomerID uuid.UUID `json:"customerId"`
	ProductID  uuid.UUID `json:"productId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CartLine is a cart item joined with live product and merchant data,
// annotated with discount-aware pricing.
type CartLine struct {
	ProductID        uuid.UUID `json:"productId"`
	ProductName      string    `json:"productName"`
	MerchantID       uuid.UUID `json:"merchantId"`
	MerchantName     string    `json:"merchantName"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unitPrice"`
	DiscountPercent  float64   `json:"discountPercent"`
	SubtotalOriginal float64   `json:"subtotal_original"`
	Subtotal         float64   `json:"subtotal"`
	Savings          float64   `json:"economia"`
}

// CartView is the customer-facing cart with per-line and aggregate pricing
type CartView struct {
	CustomerID       uuid.UUID  `json:"customerId"`
	Items            []CartLine `json:"items"`
	SubtotalOriginal float64    `json:"subtotal_original"`
	Subtotal         float64    `json:"subtotal"`
	Savings          float64    `json:"economia"`
}

// CartAddInput represents input for adding a product to the cart
type CartAddInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CartQuantityInput represents input for updating an item quantity
type CartQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}
