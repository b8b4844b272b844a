package model

import (
	"time"

	"github.com/google/uuid"
)

// GovernedTable represents a logical table whose CRUD operations are
// subject to permission checks
type GovernedTable struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"column:table_name;not null;unique" json:"table_name"`
	DisplayName string    `gorm:"column:display_name;not null" json:"display_name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GovernedTable) TableName() string {
	return "governed_tables"
}
