package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TenantID               uuid.UUID `gorm:"type:uuid;not null;index"`
	TradeName              string    `gorm:"type:varchar(255);not null"`
	Email                  string    `gorm:"type:varchar(255);not null"`
	DefaultDiscountPercent float64   `gorm:"type:decimal(5,2);default:0"`
	Status                 string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}
