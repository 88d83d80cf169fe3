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

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	m := &models.Product{
		ID:              product.ID,
		TenantID:        product.TenantID,
		MerchantID:      product.MerchantID,
		Name:            product.Name,
		Description:     product.Description.String,
		Price:           product.Price,
		DiscountPercent: product.DiscountPercent,
		IsActive:        product.IsActive,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	return nil
}

// GetByID gets a product by ID within a tenant
func (r *ProductRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetActiveByID gets an active product by ID within a tenant. Inactive and
// out-of-tenant products are indistinguishable from missing ones.
func (r *ProductRepository) GetActiveByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("id = ? AND tenant_id = ? AND is_active = ?", id, tenantID, true).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CountByTenant counts active products of a tenant
func (r *ProductRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Product{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error
	return count, err
}

// List lists products of a tenant with pagination
func (r *ProductRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Product{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Product
	if err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		products = append(products, r.toEntity(&ms[i]))
	}
	return products, total, nil
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	p := &entities.Product{
		ID:              m.ID,
		TenantID:        m.TenantID,
		MerchantID:      m.MerchantID,
		Name:            m.Name,
		Price:           m.Price,
		DiscountPercent: m.DiscountPercent,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Description != "" {
		p.Description = null.StringFrom(m.Description)
	}
	return p
}
