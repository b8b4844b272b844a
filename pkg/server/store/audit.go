package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/model"
)

// AuditEntry is an audit row as returned by queries, with the actor's
// display name resolved against identity data at query time. A renamed
// user's historical entries carry the current name.
type AuditEntry struct {
	ID            uuid.UUID      `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	UserID        uuid.UUID      `json:"user_id"`
	UserFullName  string         `json:"user_full_name"`
	Action        model.Action   `json:"action"`
	Table         string         `json:"table_name"`
	RecordID      string         `json:"record_id"`
	OldRecordData map[string]any `json:"old_record_data,omitempty"`
	NewRecordData map[string]any `json:"new_record_data,omitempty"`
}

// AuditFilter narrows an audit listing. Zero values mean "no constraint".
type AuditFilter struct {
	UserID uuid.UUID
	Table  string
	Action string
	Limit  int
	Offset int
}

// AuditStore abstracts the append-only audit trail
type AuditStore interface {
	// Append writes one audit row. Rows are never updated or deleted.
	Append(entry *model.AuditLogEntry) error

	// List returns audit rows newest first, unbounded unless the filter
	// sets a limit.
	List(filter AuditFilter) ([]AuditEntry, error)
}
