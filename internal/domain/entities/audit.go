package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuditEntry is an append-only record of a mutating operation. TenantID is
// null for actions performed by the global principal outside any tenant.
type AuditEntry struct {
	ID            uuid.UUID     `json:"id"`
	TenantID      null.String   `json:"tenantId,omitempty"`
	PrincipalID   uuid.UUID     `json:"principalId"`
	PrincipalType PrincipalType `json:"principalType"`
	Action        string        `json:"action"`
	Detail        null.JSON     `json:"detail,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
