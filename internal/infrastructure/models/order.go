package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Code        string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Total       float64   `gorm:"type:decimal(12,2);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ValidatedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []OrderLine `gorm:"foreignKey:OrderID"`
}

type OrderLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	MerchantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null"`
	Subtotal    float64   `gorm:"type:decimal(12,2);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'unconfirmed'"`
	ConfirmedBy *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}
