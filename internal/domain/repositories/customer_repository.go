package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
)

// CustomerRepository defines customer data operations. All lookups are
// tenant-scoped; a customer is never visible outside its tenant.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Customer, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entities.Customer, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.Customer, int64, error)
	TouchLastRedemption(ctx context.Context, id uuid.UUID, at time.Time) error
}
