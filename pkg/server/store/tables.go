package store

import (
	"github.com/franqsuite/backoffice/pkg/model"
)

// TablesStore abstracts the governed table registry
type TablesStore interface {
	// ListTables returns all governed tables
	ListTables() ([]model.GovernedTable, error)

	// FetchTable returns the registry entry for a table name, or nil when
	// the table is not governed
	FetchTable(tableName string) *model.GovernedTable

	// CreateTable registers a governed table
	CreateTable(table model.GovernedTable) (*model.GovernedTable, error)

	// UpdateTable replaces display metadata for a governed table
	UpdateTable(tableName string, displayName string, description string) (*model.GovernedTable, error)
}
