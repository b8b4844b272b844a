package model

import (
	"time"

	"github.com/google/uuid"
)

// UserTablePermissionOverride fully supersedes the role matrix for one
// (user, table) pair. Presence of a row means all four flags are
// authoritative; deleting the row reverts to the role fallback.
type UserTablePermissionOverride struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_table" json:"user_id"`
	Table           string    `gorm:"column:table_name;not null;uniqueIndex:idx_user_table" json:"table_name"`
	PermissionFlags `gorm:"embedded"`
	CreatedBy       *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserTablePermissionOverride) TableName() string {
	return "user_table_permissions"
}
