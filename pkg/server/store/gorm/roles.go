package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Ensure RolesStore implements store.RolesStore
var _ store.RolesStore = (*RolesStore)(nil)

// RolesStore implements store.RolesStore using GORM
type RolesStore struct {
	db *gorm.DB
}

// NewRolesStore creates a new RolesStore
func NewRolesStore(db *gorm.DB) *RolesStore {
	return &RolesStore{db: db}
}

// ListRoles returns all registered permission levels
func (s *RolesStore) ListRoles() ([]model.Role, error) {
	var roles []model.Role
	if err := s.db.Order("level").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// RoleExists checks if a permission level is registered
func (s *RolesStore) RoleExists(level string) bool {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM roles WHERE level = ?)`, level).Scan(&exists)
	return exists
}

// CreateRole registers a new permission level
func (s *RolesStore) CreateRole(level string) (*model.Role, error) {
	if level == "" {
		return nil, store.ErrEmptyKey
	}
	role := model.Role{Level: level}
	if err := s.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes a permission level from the registry
func (s *RolesStore) DeleteRole(id uuid.UUID) error {
	return s.db.Where("id = ?", id).Delete(&model.Role{}).Error
}
