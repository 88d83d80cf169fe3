package repositories

import (
	"context"

	"github.com/google/uuid"
	"discount-club.backend/internal/domain/entities"
)

// CartRepository defines cart item data operations. The active cart of a
// customer is the set of its cart items.
type CartRepository interface {
	GetItems(ctx context.Context, customerID uuid.UUID) ([]*entities.CartItem, error)
	GetItem(ctx context.Context, customerID, productID uuid.UUID) (*entities.CartItem, error)
	Insert(ctx context.Context, item *entities.CartItem) error
	Update(ctx context.Context, item *entities.CartItem) error
	Delete(ctx context.Context, customerID, productID uuid.UUID) error
	Clear(ctx context.Context, customerID uuid.UUID) error
}
