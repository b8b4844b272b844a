package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleAssignment maps a user to its single role. Assigning a second
// role replaces the first; a missing row resolves to deny-all.
type UserRoleAssignment struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"column:role;not null" json:"role"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserRoleAssignment) TableName() string {
	return "user_roles"
}
