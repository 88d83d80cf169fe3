package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"discount-club.backend/internal/domain/entities"
	"discount-club.backend/internal/infrastructure/models"
)

// AuditRepository implements append-only audit record operations
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append persists one audit record. Audit writes intentionally never join
// the caller's transaction: a rolled-back operation still leaves its trace,
// and a failed audit write must not roll back the operation.
func (r *AuditRepository) Append(ctx context.Context, entry *entities.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()

	m := &models.AuditEntry{
		ID:            entry.ID,
		PrincipalID:   entry.PrincipalID,
		PrincipalType: string(entry.PrincipalType),
		Action:        entry.Action,
		CreatedAt:     entry.CreatedAt,
	}
	if entry.TenantID.Valid {
		if tid, err := uuid.Parse(entry.TenantID.String); err == nil {
			m.TenantID = &tid
		}
	}
	if entry.Detail.Valid {
		m.Detail = string(entry.Detail.JSON)
	}

	return r.db.WithContext(ctx).Create(m).Error
}
