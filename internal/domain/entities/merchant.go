package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantStatus represents merchant lifecycle status
type MerchantStatus string

const (
	MerchantStatusActive   MerchantStatus = "active"
	MerchantStatusInactive MerchantStatus = "inactive"
)

// Merchant represents an affiliated business inside one provider tenant.
// DefaultDiscountPercent applies to its products whose own discount is unset.
type Merchant struct {
	ID                     uuid.UUID      `json:"id"`
	TenantID               uuid.UUID      `json:"tenantId"`
	TradeName              string         `json:"tradeName"`
	Email                  string         `json:"email"`
	DefaultDiscountPercent float64        `json:"defaultDiscountPercent"`
	Status                 MerchantStatus `json:"status"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
	DeletedAt              null.Time      `json:"-"`
}

// MerchantCreateInput represents input for merchant creation
type MerchantCreateInput struct {
	TradeName              string  `json:"tradeName" binding:"required,min=2,max=255"`
	Email                  string  `json:"email" binding:"required,email"`
	DefaultDiscountPercent float64 `json:"defaultDiscountPercent" binding:"gte=0,lte=100"`
}
