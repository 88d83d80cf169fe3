package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product belongs to one merchant within a tenant
type Product struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenantId"`
	MerchantID      uuid.UUID `json:"merchantId"`
	Name            string    `json:"name"`
	Description     null.String `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DiscountPercent float64   `json:"discountPercent"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	DeletedAt       null.Time `json:"-"`
}

// EffectiveDiscount resolves the discount applied to this product: its own
// percentage when nonzero, otherwise the owning merchant's default.
func (p *Product) EffectiveDiscount(merchant *Merchant) float64 {
	if p.DiscountPercent > 0 {
		return p.DiscountPercent
	}
	if merchant != nil {
		return merchant.DefaultDiscountPercent
	}
	return 0
}

// ProductCreateInput represents input for product creation
type ProductCreateInput struct {
	MerchantID      uuid.UUID `json:"merchantId" binding:"required"`
	Name            string    `json:"name" binding:"required,min=2,max=255"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price" binding:"required,gt=0"`
	DiscountPercent float64   `json:"discountPercent" binding:"gte=0,lte=100"`
}
