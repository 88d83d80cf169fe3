package repositories

import (
	"context"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
)

// PlanRepository defines subscription plan data operations
type PlanRepository interface {
	// GetActivePlan resolves the plan attached to the tenant's active
	// subscription.
	GetActivePlan(ctx context.Context, tenantID uuid.UUID) (*entities.Plan, error)
}

// AuditRepository defines append-only audit record operations
type AuditRepository interface {
	Append(ctx context.Context, entry *entities.AuditEntry) error
}
