package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
	"discount-club.backend/pkg/logger"
)

// Scope is the resolved access mode of a request: either bound to one
// tenant, or global for the super-administrator. Every usecase call takes a
// Scope, so no operation can touch the store without having declared its
// tenant boundary first.
type Scope struct {
	principal *entities.Principal
	tenantID  uuid.UUID
	hasTenant bool
	global    bool
}

// ResolveScope turns a principal into an access scope. A nil principal is
// unauthenticated; a non-global principal without a tenant is rejected.
func ResolveScope(p *entities.Principal) (Scope, error) {
	if p == nil || p.ID == uuid.Nil {
		return Scope{}, domainerrors.ErrUnauthenticated
	}

	if p.IsGlobal {
		return Scope{principal: p, global: true}, nil
	}

	tenantID, ok := p.Tenant()
	if !ok {
		return Scope{}, domainerrors.ErrForbidden
	}
	return Scope{principal: p, tenantID: tenantID, hasTenant: true}, nil
}

// Principal returns the acting principal
func (s Scope) Principal() *entities.Principal {
	return s.principal
}

// IsGlobal reports whether the scope spans tenants
func (s Scope) IsGlobal() bool {
	return s.global
}

// Tenant returns the tenant the scope is bound to. A global scope that has
// not targeted a tenant via ForTenant has no tenant to offer.
func (s Scope) Tenant() (uuid.UUID, error) {
	if !s.hasTenant {
		return uuid.Nil, domainerrors.ErrForbidden
	}
	return s.tenantID, nil
}

// ForTenant narrows the scope to one tenant. Global scopes may target any
// tenant; tenant scopes may only restate their own.
func (s Scope) ForTenant(tenantID uuid.UUID) (Scope, error) {
	if s.global {
		return Scope{principal: s.principal, tenantID: tenantID, hasTenant: true, global: true}, nil
	}
	if !s.hasTenant || s.tenantID != tenantID {
		return Scope{}, domainerrors.ErrForbidden
	}
	return s, nil
}

// Guard emits audit records for mutating operations
type Guard struct {
	auditRepo repositories.AuditRepository
}

// NewGuard creates a new guard
func NewGuard(auditRepo repositories.AuditRepository) *Guard {
	return &Guard{auditRepo: auditRepo}
}

// Audit appends one audit record for the scope's principal. Audit is a side
// effect of the primary operation: failures are logged and swallowed, never
// returned to the caller.
func (g *Guard) Audit(ctx context.Context, scope Scope, action string, detail interface{}) {
	p := scope.Principal()
	if p == nil {
		return
	}

	entry := &entities.AuditEntry{
		PrincipalID:   p.ID,
		PrincipalType: p.Type,
		Action:        action,
	}
	if tenantID, err := scope.Tenant(); err == nil {
		entry.TenantID = null.StringFrom(tenantID.String())
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			entry.Detail = null.JSONFrom(raw)
		}
	}

	if err := g.auditRepo.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "audit append failed",
			zap.String("action", action),
			zap.String("principal_id", p.ID.String()),
			zap.Error(err),
		)
	}
}
