package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/domain/repositories"
)

// CustomerUsecase handles customer business logic. Creation is quota-bound:
// the tenant's plan limit for customers is checked against a fresh count
// before the insert.
type CustomerUsecase struct {
	customerRepo repositories.CustomerRepository
	planLimits   *PlanLimitService
	guard        *Guard
}

// NewCustomerUsecase creates a new customer usecase
func NewCustomerUsecase(
	customerRepo repositories.CustomerRepository,
	planLimits *PlanLimitService,
	guard *Guard,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		planLimits:   planLimits,
		guard:        guard,
	}
}

// Create creates a customer inside the scope's tenant
func (u *CustomerUsecase) Create(ctx context.Context, scope Scope, input *entities.CustomerCreateInput) (*entities.Customer, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, err
	}

	existing, err := u.customerRepo.GetByEmail(ctx, tenantID, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrAlreadyExists
	}

	count, err := u.customerRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := u.planLimits.CheckQuota(ctx, scope, entities.QuotaResourceCustomers, count); err != nil {
		return nil, err
	}

	customer := &entities.Customer{
		TenantID: tenantID,
		Name:     input.Name,
		Email:    input.Email,
		IsActive: true,
	}
	if input.Phone != "" {
		customer.Phone = null.StringFrom(input.Phone)
	}

	if err := u.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	u.guard.Audit(ctx, scope, "customer.create", map[string]interface{}{
		"customer_id": customer.ID,
		"email":       customer.Email,
	})
	return customer, nil
}

// List lists the tenant's customers with pagination
func (u *CustomerUsecase) List(ctx context.Context, scope Scope, limit, offset int) ([]*entities.Customer, int64, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, 0, err
	}
	return u.customerRepo.List(ctx, tenantID, limit, offset)
}

// Get returns one customer of the tenant
func (u *CustomerUsecase) Get(ctx context.Context, scope Scope, customerID string) (*entities.Customer, error) {
	tenantID, err := scope.Tenant()
	if err != nil {
		return nil, err
	}
	id, err := parseID(customerID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	return u.customerRepo.GetByID(ctx, tenantID, id)
}
