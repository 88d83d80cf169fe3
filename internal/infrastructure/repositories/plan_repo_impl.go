package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/infrastructure/models"
)

// PlanRepository implements subscription plan data operations
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetActivePlan resolves the plan attached to the tenant's active subscription
func (r *PlanRepository) GetActivePlan(ctx context.Context, tenantID uuid.UUID) (*entities.Plan, error) {
	var sub models.Subscription
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Plan").
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("started_at DESC").
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	if sub.Plan == nil {
		return nil, domainerrors.ErrNotFound
	}
	return toPlanEntity(sub.Plan), nil
}

func toPlanEntity(m *models.Plan) *entities.Plan {
	p := &entities.Plan{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.MaxCustomers != nil {
		p.MaxCustomers = null.IntFrom(int(*m.MaxCustomers))
	}
	if m.MaxMerchants != nil {
		p.MaxMerchants = null.IntFrom(int(*m.MaxMerchants))
	}
	if m.MaxProducts != nil {
		p.MaxProducts = null.IntFrom(int(*m.MaxProducts))
	}
	if m.MaxVouchers != nil {
		p.MaxVouchers = null.IntFrom(int(*m.MaxVouchers))
	}
	return p
}
