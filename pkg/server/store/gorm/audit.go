package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Ensure AuditStore implements store.AuditStore
var _ store.AuditStore = (*AuditStore)(nil)

// AuditStore implements store.AuditStore using GORM
type AuditStore struct {
	db *gorm.DB
}

// NewAuditStore creates a new AuditStore
func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{db: db}
}

// Append writes one audit row
func (s *AuditStore) Append(entry *model.AuditLogEntry) error {
	return s.db.Create(entry).Error
}

// auditRow is the scan target for the joined listing query
type auditRow struct {
	ID            uuid.UUID
	Timestamp     time.Time
	UserID        uuid.UUID
	UserFullName  string
	Action        model.Action
	TableName     string
	RecordID      string
	OldRecordData datatypes.JSONMap
	NewRecordData datatypes.JSONMap
}

// List returns audit rows newest first. The actor's display name is
// resolved against the users table at query time, so renamed users show
// their current name on historical entries.
func (s *AuditStore) List(filter store.AuditFilter) ([]store.AuditEntry, error) {
	query := s.db.Table("audit_logs").
		Select(`audit_logs.id, audit_logs.timestamp, audit_logs.user_id,
			COALESCE(users.full_name, '') AS user_full_name,
			audit_logs.action, audit_logs.table_name, audit_logs.record_id,
			audit_logs.old_record_data, audit_logs.new_record_data`).
		Joins("LEFT JOIN users ON users.id = audit_logs.user_id").
		Order("audit_logs.timestamp DESC")

	if filter.UserID != uuid.Nil {
		query = query.Where("audit_logs.user_id = ?", filter.UserID)
	}
	if filter.Table != "" {
		query = query.Where("audit_logs.table_name = ?", filter.Table)
	}
	if filter.Action != "" {
		query = query.Where("audit_logs.action = ?", filter.Action)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []auditRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]store.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, store.AuditEntry{
			ID:            row.ID,
			Timestamp:     row.Timestamp,
			UserID:        row.UserID,
			UserFullName:  row.UserFullName,
			Action:        row.Action,
			Table:         row.TableName,
			RecordID:      row.RecordID,
			OldRecordData: row.OldRecordData,
			NewRecordData: row.NewRecordData,
		})
	}
	return entries, nil
}
