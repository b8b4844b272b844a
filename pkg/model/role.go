package model

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a permission level available to users
type Role struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Level     string    `gorm:"column:level;not null" json:"level"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}
