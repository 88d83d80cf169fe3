package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/infrastructure/models"
)

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	if merchant.Status == "" {
		merchant.Status = entities.MerchantStatusActive
	}
	merchant.CreatedAt = time.Now()
	merchant.UpdatedAt = merchant.CreatedAt

	m := &models.Merchant{
		ID:                     merchant.ID,
		TenantID:               merchant.TenantID,
		TradeName:              merchant.TradeName,
		Email:                  merchant.Email,
		DefaultDiscountPercent: merchant.DefaultDiscountPercent,
		Status:                 string(merchant.Status),
		CreatedAt:              merchant.CreatedAt,
		UpdatedAt:              merchant.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	merchant.ID = m.ID
	return nil
}

// GetByID gets a merchant by ID within a tenant
func (r *MerchantRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CountByTenant counts active merchants of a tenant
func (r *MerchantRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("tenant_id = ? AND status = ?", tenantID, string(entities.MerchantStatusActive)).
		Count(&count).Error
	return count, err
}

// List lists merchants of a tenant with pagination
func (r *MerchantRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.Merchant, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Merchant
	if err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("trade_name ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	merchants := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		merchants = append(merchants, r.toEntity(&ms[i]))
	}
	return merchants, total, nil
}

// UpdateStatus updates merchant status
func (r *MerchantRepository) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status entities.MerchantStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MerchantRepository) toEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:                     m.ID,
		TenantID:               m.TenantID,
		TradeName:              m.TradeName,
		Email:                  m.Email,
		DefaultDiscountPercent: m.DefaultDiscountPercent,
		Status:                 entities.MerchantStatus(m.Status),
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}
