package model

import (
	"github.com/google/uuid"
)

// PermissionFlags is the set of CRUD grants carried by matrix rows and
// overrides. The four flags are always written together.
type PermissionFlags struct {
	CanCreate bool `gorm:"column:can_create;not null;default:false" json:"can_create"`
	CanRead   bool `gorm:"column:can_read;not null;default:false" json:"can_read"`
	CanUpdate bool `gorm:"column:can_update;not null;default:false" json:"can_update"`
	CanDelete bool `gorm:"column:can_delete;not null;default:false" json:"can_delete"`
}

// Allows returns the flag matching the given action.
func (f PermissionFlags) Allows(action Action) bool {
	switch action {
	case ActionCreate:
		return f.CanCreate
	case ActionRead:
		return f.CanRead
	case ActionUpdate:
		return f.CanUpdate
	case ActionDelete:
		return f.CanDelete
	}
	return false
}

// RoleTablePermission grants CRUD operations on a governed table to a role.
// Unique on (role, table_name); writes are keyed upserts.
type RoleTablePermission struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Role            string    `gorm:"column:role;not null;uniqueIndex:idx_role_table" json:"role"`
	Table           string    `gorm:"column:table_name;not null;uniqueIndex:idx_role_table" json:"table_name"`
	PermissionFlags `gorm:"embedded"`
}

func (RoleTablePermission) TableName() string {
	return "role_table_permissions"
}
