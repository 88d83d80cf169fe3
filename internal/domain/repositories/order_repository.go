package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
)

// OrderRepository defines order and order-line data operations.
// Create persists the order together with its lines; callers wanting
// atomicity with other writes run inside a UnitOfWork.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByCode(ctx context.Context, code string) (*entities.Order, error)
	// GetByCodeForUpdate resolves an order like GetByCode but takes a row
	// lock on the order for the duration of the surrounding transaction, so
	// concurrent confirmations of the same order serialize.
	GetByCodeForUpdate(ctx context.Context, code string) (*entities.Order, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	ListByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)

	// ConfirmLines marks the order's unconfirmed lines owned by the merchant
	// as confirmed, stamping the confirming merchant and time. Returns the
	// number of lines transitioned.
	ConfirmLines(ctx context.Context, orderID, merchantID uuid.UUID, at time.Time) (int64, error)
	// CountLines returns total and confirmed line counts for the order.
	CountLines(ctx context.Context, orderID uuid.UUID) (total, confirmed int64, err error)
	MarkValidated(ctx context.Context, orderID uuid.UUID, at time.Time) error
}
