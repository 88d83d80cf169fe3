package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/infrastructure/models"
)

// CustomerRepository implements customer data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt

	m := &models.Customer{
		ID:       customer.ID,
		TenantID: customer.TenantID,
		Name:     customer.Name,
		Email:    customer.Email,
		Phone:    customer.Phone.String,
		IsActive: customer.IsActive,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	customer.ID = m.ID
	return nil
}

// GetByID gets a customer by ID within a tenant
func (r *CustomerRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Customer, error) {
	var m models.Customer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a customer by email within a tenant
func (r *CustomerRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entities.Customer, error) {
	var m models.Customer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("tenant_id = ? AND email = ?", tenantID, email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CountByTenant counts active customers of a tenant
func (r *CustomerRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Customer{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error
	return count, err
}

// List lists customers of a tenant with pagination
func (r *CustomerRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.Customer, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Customer{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Customer
	if err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	customers := make([]*entities.Customer, 0, len(ms))
	for i := range ms {
		customers = append(customers, r.toEntity(&ms[i]))
	}
	return customers, total, nil
}

// TouchLastRedemption updates the customer's last redemption marker
func (r *CustomerRepository) TouchLastRedemption(ctx context.Context, id uuid.UUID, at time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"last_redemption_at": at, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) toEntity(m *models.Customer) *entities.Customer {
	c := &entities.Customer{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Email:     m.Email,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Phone != "" {
		c.Phone = null.StringFrom(m.Phone)
	}
	if m.LastRedemptionAt != nil {
		c.LastRedemptionAt = null.TimeFrom(*m.LastRedemptionAt)
	}
	return c
}
