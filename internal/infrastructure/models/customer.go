package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_customers_tenant_email,priority:1"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_customers_tenant_email,priority:2"`
	Phone            string    `gorm:"type:varchar(50)"`
	IsActive         bool      `gorm:"not null;default:true"`
	LastRedemptionAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
