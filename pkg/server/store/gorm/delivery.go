package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Ensure DeliveryStore implements store.DeliveryStore
var _ store.DeliveryStore = (*DeliveryStore)(nil)

// DeliveryStore implements store.DeliveryStore using GORM
type DeliveryStore struct {
	db *gorm.DB
}

// NewDeliveryStore creates a new DeliveryStore
func NewDeliveryStore(db *gorm.DB) *DeliveryStore {
	return &DeliveryStore{db: db}
}

// Append records one delivery attempt
func (s *DeliveryStore) Append(row *model.NotificationDeliveryLog) error {
	if row.Attempt < 1 {
		return store.ErrInvalidAttempt
	}
	return s.db.Create(row).Error
}

// List returns all delivery rows, newest dispatch first
func (s *DeliveryStore) List() ([]model.NotificationDeliveryLog, error) {
	var rows []model.NotificationDeliveryLog
	if err := s.db.Order("dispatched_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteOne hard-deletes a single delivery row
func (s *DeliveryStore) DeleteOne(id uuid.UUID) error {
	return s.db.Where("id = ?", id).Delete(&model.NotificationDeliveryLog{}).Error
}

// DeleteAll hard-deletes every delivery row
func (s *DeliveryStore) DeleteAll() (int64, error) {
	tx := s.db.Where("1 = 1").Delete(&model.NotificationDeliveryLog{})
	return tx.RowsAffected, tx.Error
}
