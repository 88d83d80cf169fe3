package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"discount-club.backend/internal/domain/entities"
	domainerrors "discount-club.backend/internal/domain/errors"
	"discount-club.backend/internal/infrastructure/models"
)

// OrderRepository implements order and order-line data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order together with its lines. The caller is expected
// to run this inside a UnitOfWork when other writes must commit atomically
// with it.
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	m := &models.Order{
		ID:         order.ID,
		TenantID:   order.TenantID,
		CustomerID: order.CustomerID,
		Code:       order.Code,
		Total:      order.Total,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		if line.ID == uuid.Nil {
			line.ID = uuid.New()
		}
		line.OrderID = order.ID
		line.CreatedAt = order.CreatedAt

		lm := &models.OrderLine{
			ID:          line.ID,
			OrderID:     line.OrderID,
			ProductID:   line.ProductID,
			MerchantID:  line.MerchantID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
			Status:      string(line.Status),
			CreatedAt:   line.CreatedAt,
		}
		if err := db.WithContext(ctx).Create(lm).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByCode resolves an order and its lines purely from the redemption code.
// The code is the only lookup key; tenant scope is derived from the result.
func (r *OrderRepository) GetByCode(ctx context.Context, code string) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Lines").Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByCodeForUpdate resolves an order like GetByCode but locks the order
// row until the surrounding transaction ends. Without the lock, two
// merchants confirming disjoint lines of the same order concurrently could
// both count the other's confirmations as pending and leave a fully
// confirmed order stuck in pending. SQLite has no FOR UPDATE; its single
// writer already serializes there.
func (r *OrderRepository) GetByCodeForUpdate(ctx context.Context, code string) (*entities.Order, error) {
	db := GetDB(ctx, r.db)
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m models.Order
	if err := db.WithContext(ctx).Preload("Lines").Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CodeExists reports whether a redemption code is already taken
func (r *OrderRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Order{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByCustomer lists a customer's orders with pagination
func (r *OrderRepository) ListByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Order{}).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := db.WithContext(ctx).Preload("Lines").
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, r.toEntity(&ms[i]))
	}
	return orders, total, nil
}

// ConfirmLines transitions the order's unconfirmed lines owned by the
// merchant to confirmed. The unconfirmed predicate makes repeated calls for
// the same merchant match zero rows, so confirmation is idempotent without
// application-level locking.
func (r *OrderRepository) ConfirmLines(ctx context.Context, orderID, merchantID uuid.UUID, at time.Time) (int64, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.OrderLine{}).
		Where("order_id = ? AND merchant_id = ? AND status = ?", orderID, merchantID, string(entities.LineStatusUnconfirmed)).
		Updates(map[string]interface{}{
			"status":       string(entities.LineStatusConfirmed),
			"confirmed_by": merchantID,
			"confirmed_at": at,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountLines returns total and confirmed line counts for an order
func (r *OrderRepository) CountLines(ctx context.Context, orderID uuid.UUID) (total, confirmed int64, err error) {
	db := GetDB(ctx, r.db)
	if err = db.WithContext(ctx).Model(&models.OrderLine{}).
		Where("order_id = ?", orderID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = db.WithContext(ctx).Model(&models.OrderLine{}).
		Where("order_id = ? AND status = ?", orderID, string(entities.LineStatusConfirmed)).
		Count(&confirmed).Error; err != nil {
		return 0, 0, err
	}
	return total, confirmed, nil
}

// MarkValidated transitions a pending order to validated
func (r *OrderRepository) MarkValidated(ctx context.Context, orderID uuid.UUID, at time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, string(entities.OrderStatusPending)).
		Updates(map[string]interface{}{
			"status":       string(entities.OrderStatusValidated),
			"validated_at": at,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) toEntity(m *models.Order) *entities.Order {
	o := &entities.Order{
		ID:         m.ID,
		TenantID:   m.TenantID,
		CustomerID: m.CustomerID,
		Code:       m.Code,
		Total:      m.Total,
		Status:     entities.OrderStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.ValidatedAt != nil {
		o.ValidatedAt = null.TimeFrom(*m.ValidatedAt)
	}
	for i := range m.Lines {
		lm := &m.Lines[i]
		line := entities.OrderLine{
			ID:          lm.ID,
			OrderID:     lm.OrderID,
			ProductID:   lm.ProductID,
			MerchantID:  lm.MerchantID,
			ProductName: lm.ProductName,
			Quantity:    lm.Quantity,
			UnitPrice:   lm.UnitPrice,
			Subtotal:    lm.Subtotal,
			Status:      entities.LineStatus(lm.Status),
			CreatedAt:   lm.CreatedAt,
		}
		if lm.ConfirmedBy != nil {
			line.ConfirmedBy = null.StringFrom(lm.ConfirmedBy.String())
		}
		if lm.ConfirmedAt != nil {
			line.ConfirmedAt = null.TimeFrom(*lm.ConfirmedAt)
		}
		o.Lines = append(o.Lines, line)
	}
	return o
}
