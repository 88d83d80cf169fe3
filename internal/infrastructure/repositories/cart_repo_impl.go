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

// CartRepository implements cart item data operations
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetItems returns all cart items of a customer, oldest first
func (r *CartRepository) GetItems(ctx context.Context, customerID uuid.UUID) ([]*entities.CartItem, error) {
	var ms []models.CartItem
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.CartItem, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// GetItem returns the cart item of a customer for a product
func (r *CartRepository) GetItem(ctx context.Context, customerID, productID uuid.UUID) (*entities.CartItem, error) {
	var m models.CartItem
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Insert inserts a new cart item
func (r *CartRepository) Insert(ctx context.Context, item *entities.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	m := &models.CartItem{
		ID:         item.ID,
		TenantID:   item.TenantID,
		CustomerID: item.CustomerID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

// Update overwrites quantity and unit price of an existing item
func (r *CartRepository) Update(ctx context.Context, item *entities.CartItem) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.CartItem{}).
		Where("customer_id = ? AND product_id = ?", item.CustomerID, item.ProductID).
		Updates(map[string]interface{}{
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes one item from the customer's cart
func (r *CartRepository) Delete(ctx context.Context, customerID, productID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Clear removes all items from the customer's cart
func (r *CartRepository) Clear(ctx context.Context, customerID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&models.CartItem{}).Error
}

func (r *CartRepository) toEntity(m *models.CartItem) *entities.CartItem {
	return &entities.CartItem{
		ID:         m.ID,
		TenantID:   m.TenantID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
