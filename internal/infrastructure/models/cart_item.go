package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_cart_items_customer_product,priority:1"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_cart_items_customer_product,priority:2"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
