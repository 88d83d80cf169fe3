package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry rows are append-only; no update or delete path exists.
type AuditEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TenantID      *uuid.UUID `gorm:"type:uuid;index"`
	PrincipalID   uuid.UUID  `gorm:"type:uuid;not null"`
	PrincipalType string     `gorm:"type:varchar(50);not null"`
	Action        string     `gorm:"type:varchar(100);not null;index"`
	Detail        string     `gorm:"type:jsonb;default:'{}'"`
	CreatedAt     time.Time
}
