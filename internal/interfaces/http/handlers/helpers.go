package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/interfaces/http/middleware"
	"discount-club.backend/internal/usecases"
)

// resolveScope turns the request's principal into an access scope. A global
// principal may target a specific tenant through the tenantId query
// parameter; tenant principals are already bound.
func resolveScope(c *gin.Context) (usecases.Scope, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return usecases.Scope{}, domainerrors.ErrUnauthenticated
	}

	scope, err := usecases.ResolveScope(principal)
	if err != nil {
		return usecases.Scope{}, err
	}

	if scope.IsGlobal() {
		if raw := c.Query("tenantId"); raw != "" {
			tenantID, err := uuid.Parse(raw)
			if err != nil {
				return usecases.Scope{}, domainerrors.ErrInvalidInput
			}
			return scope.ForTenant(tenantID)
		}
	}
	return scope, nil
}

// resolveCustomerID determines which customer a cart or checkout call acts
// on: customer principals act on themselves, others name the customer via
// the customerId query parameter.
func resolveCustomerID(c *gin.Context, scope usecases.Scope) (uuid.UUID, error) {
	p := scope.Principal()
	if p != nil && p.Type == entities.PrincipalTypeCustomer {
		return p.ID, nil
	}

	raw := c.Query("customerId")
	if raw == "" {
		return uuid.Nil, domainerrors.ErrInvalidInput
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput
	}
	return id, nil
}
