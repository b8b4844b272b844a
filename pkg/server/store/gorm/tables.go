package gorm

import (
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Ensure TablesStore implements store.TablesStore
var _ store.TablesStore = (*TablesStore)(nil)

// TablesStore implements store.TablesStore using GORM
type TablesStore struct {
	db *gorm.DB
}

// NewTablesStore creates a new TablesStore
func NewTablesStore(db *gorm.DB) *TablesStore {
	return &TablesStore{db: db}
}

// ListTables returns all governed tables
func (s *TablesStore) ListTables() ([]model.GovernedTable, error) {
	var tables []model.GovernedTable
	if err := s.db.Order("table_name").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// FetchTable returns the registry entry for a table name, or nil when the
// table is not governed
func (s *TablesStore) FetchTable(tableName string) *model.GovernedTable {
	var table model.GovernedTable
	tx := s.db.Where("table_name = ?", tableName).First(&table)
	if tx.Error != nil {
		return nil
	}
	return &table
}

// CreateTable registers a governed table
func (s *TablesStore) CreateTable(table model.GovernedTable) (*model.GovernedTable, error) {
	if table.Name == "" {
		return nil, store.ErrEmptyKey
	}
	if err := s.db.Create(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateTable replaces display metadata for a governed table
func (s *TablesStore) UpdateTable(tableName string, displayName string, description string) (*model.GovernedTable, error) {
	if tableName == "" {
		return nil, store.ErrEmptyKey
	}
	tx := s.db.Model(&model.GovernedTable{}).
		Where("table_name = ?", tableName).
		Updates(map[string]interface{}{
			"display_name": displayName,
			"description":  description,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrRecordNotFound
	}
	return s.FetchTable(tableName), nil
}
