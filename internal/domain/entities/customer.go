package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Customer represents an end-customer of one provider tenant
type Customer struct {
	ID               uuid.UUID `json:"id"`
	TenantID         uuid.UUID `json:"tenantId"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            null.String `json:"phone,omitempty"`
	IsActive         bool      `json:"isActive"`
	LastRedemptionAt null.Time `json:"lastRedemptionAt,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	DeletedAt        null.Time `json:"-"`
}

// CustomerCreateInput represents input for customer creation
type CustomerCreateInput struct {
	Name  string `json:"name" binding:"required,min=2,max=255"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone,omitempty"`
}
