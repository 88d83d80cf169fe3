package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PrincipalType represents the kind of authenticated actor
type PrincipalType string

const (
	PrincipalTypeCustomer PrincipalType = "customer"
	PrincipalTypeMerchant PrincipalType = "merchant"
	PrincipalTypeProvider PrincipalType = "provider"
	PrincipalTypeGlobal   PrincipalType = "global"
)

// Principal is the resolved acting identity attached to every request.
// TenantID is null for the global super-administrator, which may span tenants.
type Principal struct {
	ID       uuid.UUID     `json:"principalId"`
	Type     PrincipalType `json:"principalType"`
	TenantID null.String   `json:"tenantId,omitempty"`
	IsGlobal bool          `json:"isGlobal"`
}

// Tenant returns the principal's tenant id, if any.
func (p *Principal) Tenant() (uuid.UUID, bool) {
	if !p.TenantID.Valid {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(p.TenantID.String)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
