package usecases

import (
	"context"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
	"discount-club.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant business logic
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
	planLimits   *PlanLimitService
	guard        *Guard
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	planLimits *PlanLimitService,
	guard *Guard,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo: merchantRepo,
		planLimits:   planLimits,
		guard:        guard,
	}
}

// Create creates a merchant inside the scope's tenant, subject to the
// tenant's merchant quota.
func (u *MerchantUsecase) Create(ctx context.Context, scope Scope, input *entities.MerchantCreateInput) (*entities.Merchant, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, err
	}

	count, err := u.merchantRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := u.planLimits.CheckQuota(ctx, scope, entities.QuotaResourceMerchants, count); err != nil {
		return nil, err
	}

	merchant := &entities.Merchant{
		TenantID:               tenantID,
		TradeName:              input.TradeName,
		Email:                  input.Email,
		DefaultDiscountPercent: input.DefaultDiscountPercent,
		Status:                 entities.MerchantStatusActive,
	}

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}

	u.guard.Audit(ctx, scope, "merchant.create", map[string]interface{}{
		"merchant_id": merchant.ID,
		"trade_name":  merchant.TradeName,
	})
	return merchant, nil
}

// List lists the tenant's merchants with pagination
func (u *MerchantUsecase) List(ctx context.Context, scope Scope, limit, offset int) ([]*entities.Merchant, int64, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, 0, err
	}
	return u.merchantRepo.List(ctx, tenantID, limit, offset)
}

// Deactivate marks a merchant inactive. Existing cart items referencing its
// products keep blocking the merchant-lock; orders already carrying its
// lines stay confirmable.
func (u *MerchantUsecase) Deactivate(ctx context.Context, scope Scope, merchantID uuid.UUID) error {
	tenantID, err := scope.Tenant()
	if err != nil {
		return err
	}

	if err := u.merchantRepo.UpdateStatus(ctx, tenantID, merchantID, entities.MerchantStatusInactive); err != nil {
		return err
	}

	u.guard.Audit(ctx, scope, "merchant.deactivate", map[string]interface{}{
		"merchant_id": merchantID,
	})
	return nil
}
