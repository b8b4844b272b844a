package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogEntry is an immutable record of a single governed mutation.
// Rows are append-only; nothing in the application updates or deletes them.
type AuditLogEntry struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Timestamp     time.Time         `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
	UserID        uuid.UUID         `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Action        Action            `gorm:"column:action;type:text;not null" json:"action"`
	Table         string            `gorm:"column:table_name;not null" json:"table_name"`
	RecordID      string            `gorm:"column:record_id;not null" json:"record_id"`
	OldRecordData datatypes.JSONMap `gorm:"column:old_record_data;type:jsonb" json:"old_record_data,omitempty"`
	NewRecordData datatypes.JSONMap `gorm:"column:new_record_data;type:jsonb" json:"new_record_data,omitempty"`
}

func (AuditLogEntry) TableName() string {
	return "audit_logs"
}
