package usecases

import (
	"context"

	"github.com/volatiletech/null/v8"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
)

// ProductUsecase handles product business logic
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
	planLimits   *PlanLimitService
	guard        *Guard
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	productRepo repositories.ProductRepository,
	merchantRepo repositories.MerchantRepository,
	planLimits *PlanLimitService,
	guard *Guard,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		planLimits:   planLimits,
		guard:        guard,
	}
}

// Create creates a product for an active merchant of the scope's tenant,
// subject to the tenant's product quota.
func (u *ProductUsecase) Create(ctx context.Context, scope Scope, input *entities.ProductCreateInput) (*entities.Product, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, tenantID, input.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, domainerrors.ErrBadRequest
	}

	count, err := u.productRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := u.planLimits.CheckQuota(ctx, scope, entities.QuotaResourceProducts, count); err != nil {
		return nil, err
	}

	product := &entities.Product{
		TenantID:        tenantID,
		MerchantID:      merchant.ID,
		Name:            input.Name,
		Price:           input.Price,
		DiscountPercent: input.DiscountPercent,
		IsActive:        true,
	}
	if input.Description != "" {
		product.Description = null.StringFrom(input.Description)
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	u.guard.Audit(ctx, scope, "product.create", map[string]interface{}{
		"product_id":  product.ID,
		"merchant_id": merchant.ID,
		"name":        product.Name,
	})
	return product, nil
}

// List lists the tenant's products with pagination
func (u *ProductUsecase) List(ctx context.Context, scope Scope, limit, offset int) ([]*entities.Product, int64, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, 0, err
	}
	return u.productRepo.List(ctx, tenantID, limit, offset)
}
