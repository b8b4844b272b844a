package store

import "errors"

// ErrRecordNotFound is returned when a governed row doesn't exist
var ErrRecordNotFound = errors.New("record not found")

// RecordsStore abstracts row-level CRUD on governed tables. Rows are
// schemaless from this layer's point of view: arbitrary column/value maps.
type RecordsStore interface {
	// ListRecords returns all rows of a governed table
	ListRecords(tableName string) ([]map[string]any, error)

	// FetchRecord returns one row by id.
	// Returns ErrRecordNotFound when absent.
	FetchRecord(tableName string, recordID string) (map[string]any, error)

	// InsertRecord inserts a row and returns its generated id
	InsertRecord(tableName string, data map[string]any) (string, error)

	// UpdateRecord replaces the given columns of a row and returns the row
	// as it was before the write.
	UpdateRecord(tableName string, recordID string, data map[string]any) (map[string]any, error)

	// DeleteRecord removes a row and returns it as it was before the
	// delete.
	DeleteRecord(tableName string, recordID string) (map[string]any, error)
}
