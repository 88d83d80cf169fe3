package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Tenant represents one provider's isolated slice of the shared store.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// QuotaResource identifies a resource type governed by plan limits
type QuotaResource string

const (
	QuotaResourceCustomers QuotaResource = "customers"
	QuotaResourceMerchants QuotaResource = "merchants"
	QuotaResourceProducts  QuotaResource = "products"
	QuotaResourceVouchers  QuotaResource = "vouchers"
)

// Plan carries the per-resource-type quotas of a subscription plan.
// A null limit means unlimited.
type Plan struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MaxCustomers null.Int  `json:"maxCustomers,omitempty"`
	MaxMerchants null.Int  `json:"maxMerchants,omitempty"`
	MaxProducts  null.Int  `json:"maxProducts,omitempty"`
	MaxVouchers  null.Int  `json:"maxVouchers,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LimitFor returns the plan limit for a resource type.
func (p *Plan) LimitFor(resource QuotaResource) null.Int {
	switch resource {
	case QuotaResourceCustomers:
		return p.MaxCustomers
	case QuotaResourceMerchants:
		return p.MaxMerchants
	case QuotaResourceProducts:
		return p.MaxProducts
	case QuotaResourceVouchers:
		return p.MaxVouchers
	default:
		return null.Int{}
	}
}

// Subscription attaches a plan to a tenant
type Subscription struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenantId"`
	PlanID    uuid.UUID `json:"planId"`
	IsActive  bool      `json:"isActive"`
	StartedAt time.Time `json:"startedAt"`
	ExpiresAt null.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
