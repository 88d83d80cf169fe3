package repositories

import (
	"context"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Merchant, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.Merchant, int64, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status entities.MerchantStatus) error
}

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Product, error)
	GetActiveByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Product, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error)
}
