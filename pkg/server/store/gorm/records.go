package gorm

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Ensure RecordsStore implements store.RecordsStore
var _ store.RecordsStore = (*RecordsStore)(nil)

// RecordsStore implements store.RecordsStore using GORM. Governed tables
// are accessed by name with schemaless column/value maps; this layer makes
// no assumptions about their columns beyond an "id" primary key.
type RecordsStore struct {
	db *gorm.DB
}

// NewRecordsStore creates a new RecordsStore
func NewRecordsStore(db *gorm.DB) *RecordsStore {
	return &RecordsStore{db: db}
}

// ListRecords returns all rows of a governed table
func (s *RecordsStore) ListRecords(tableName string) ([]map[string]any, error) {
	var rows []map[string]any
	if err := s.db.Table(tableName).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchRecord returns one row by id
func (s *RecordsStore) FetchRecord(tableName string, recordID string) (map[string]any, error) {
	row := map[string]any{}
	tx := s.db.Table(tableName).Where("id = ?", recordID).Take(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrRecordNotFound
		}
		return nil, tx.Error
	}
	return row, nil
}

// InsertRecord inserts a row and returns its generated id
func (s *RecordsStore) InsertRecord(tableName string, data map[string]any) (string, error) {
	if _, ok := data["id"]; !ok {
		data["id"] = uuid.NewString()
	}
	if err := s.db.Table(tableName).Create(data).Error; err != nil {
		return "", err
	}
	id, _ := data["id"].(string)
	return id, nil
}

// UpdateRecord replaces the given columns of a row and returns the row as
// it was before the write.
func (s *RecordsStore) UpdateRecord(tableName string, recordID string, data map[string]any) (map[string]any, error) {
	old, err := s.FetchRecord(tableName, recordID)
	if err != nil {
		return nil, err
	}
	delete(data, "id")
	if err := s.db.Table(tableName).Where("id = ?", recordID).Updates(data).Error; err != nil {
		return nil, err
	}
	return old, nil
}

// DeleteRecord removes a row and returns it as it was before the delete
func (s *RecordsStore) DeleteRecord(tableName string, recordID string) (map[string]any, error) {
	old, err := s.FetchRecord(tableName, recordID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Exec(fmt.Sprintf(`DELETE FROM %q WHERE id = ?`, tableName), recordID).Error; err != nil {
		return nil, err
	}
	return old, nil
}
