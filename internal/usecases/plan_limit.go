package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
	"discount-club.backend/pkg/logger"
	pkgredis "discount-club.backend/pkg/redis"
)

// PlanLimitService approves or rejects creation of quota-bound resources
// against the tenant's active plan.
type PlanLimitService struct {
	planRepo repositories.PlanRepository
	cacheTTL time.Duration
}

// NewPlanLimitService creates a new plan limit service
func NewPlanLimitService(planRepo repositories.PlanRepository, cacheTTL time.Duration) *PlanLimitService {
	return &PlanLimitService{planRepo: planRepo, cacheTTL: cacheTTL}
}

// CheckQuota passes when the tenant's plan allows one more resource of the
// given type. currentCount must be freshly computed by the caller; the
// count-then-check pair is not serialized against concurrent inserts, so two
// racing creations can transiently overshoot the limit by a small margin.
// Global scopes bypass quota checks entirely.
func (s *PlanLimitService) CheckQuota(ctx context.Context, scope Scope, resource entities.QuotaResource, currentCount int64) error {
	if scope.IsGlobal() {
		return nil
	}

	tenantID, err := scope.Tenant()
	if err != nil {
		return err
	}

	plan, err := s.activePlan(ctx, tenantID)
	if err != nil {
		return err
	}

	limit := plan.LimitFor(resource)
	if !limit.Valid {
		return nil
	}
	if currentCount < int64(limit.Int) {
		return nil
	}
	return &domainerrors.QuotaExceededError{Resource: string(resource), Limit: limit.Int}
}

// activePlan reads the tenant's plan through a redis read-through cache.
// Cache problems degrade to a direct repository read.
func (s *PlanLimitService) activePlan(ctx context.Context, tenantID uuid.UUID) (*entities.Plan, error) {
	key := "plan:active:" + tenantID.String()

	if pkgredis.GetClient() != nil {
		if raw, err := pkgredis.Get(ctx, key); err == nil {
			var plan entities.Plan
			if err := json.Unmarshal([]byte(raw), &plan); err == nil {
				return &plan, nil
			}
		}
	}

	plan, err := s.planRepo.GetActivePlan(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if pkgredis.GetClient() != nil {
		if raw, err := json.Marshal(plan); err == nil {
			if err := pkgredis.Set(ctx, key, raw, s.cacheTTL); err != nil {
				logger.Warn(ctx, "plan cache write failed",
					zap.String("tenant_id", tenantID.String()),
					zap.Error(err),
				)
			}
		}
	}
	return plan, nil
}
