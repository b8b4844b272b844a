package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Ensure PermissionsStore implements store.PermissionsStore
var _ store.PermissionsStore = (*PermissionsStore)(nil)

// PermissionsStore implements store.PermissionsStore using GORM
type PermissionsStore struct {
	db *gorm.DB
}

// NewPermissionsStore creates a new PermissionsStore
func NewPermissionsStore(db *gorm.DB) *PermissionsStore {
	return &PermissionsStore{db: db}
}

// FetchOverride returns the override row for (user, table), or nil when the
// user has no override for that table.
func (s *PermissionsStore) FetchOverride(userID uuid.UUID, tableName string) *model.UserTablePermissionOverride {
	var override model.UserTablePermissionOverride
	tx := s.db.Where("user_id = ? AND table_name = ?", userID, tableName).First(&override)
	if tx.Error != nil {
		return nil
	}
	return &override
}

// FetchUserRole returns the role assigned to the user, or "" when the user
// has no assignment.
func (s *PermissionsStore) FetchUserRole(userID uuid.UUID) string {
	var assignment model.UserRoleAssignment
	tx := s.db.Where("user_id = ?", userID).First(&assignment)
	if tx.Error != nil {
		return ""
	}
	return assignment.Role
}

// FetchRolePermission returns the matrix row for (role, table), or nil when
// no grant exists.
func (s *PermissionsStore) FetchRolePermission(role string, tableName string) *model.RoleTablePermission {
	var permission model.RoleTablePermission
	tx := s.db.Where("role = ? AND table_name = ?", role, tableName).First(&permission)
	if tx.Error != nil {
		return nil
	}
	return &permission
}

// UpsertRolePermission atomically inserts or replaces the matrix row keyed
// on (role, table).
func (s *PermissionsStore) UpsertRolePermission(role string, tableName string, flags model.PermissionFlags) (*model.RoleTablePermission, error) {
	if role == "" || tableName == "" {
		return nil, store.ErrEmptyKey
	}

	row := model.RoleTablePermission{
		Role:            role,
		Table:           tableName,
		PermissionFlags: flags,
	}
	tx := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role"}, {Name: "table_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_create", "can_read", "can_update", "can_delete"}),
	}).Create(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Re-read so the caller always sees the surviving row, id included
	return s.FetchRolePermission(role, tableName), nil
}

// UpsertOverride atomically inserts or replaces the override row keyed on
// (user, table).
func (s *PermissionsStore) UpsertOverride(userID uuid.UUID, tableName string, flags model.PermissionFlags, createdBy *uuid.UUID) (*model.UserTablePermissionOverride, error) {
	if tableName == "" {
		return nil, store.ErrEmptyKey
	}

	row := model.UserTablePermissionOverride{
		UserID:          userID,
		Table:           tableName,
		PermissionFlags: flags,
		CreatedBy:       createdBy,
	}
	tx := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "table_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_create", "can_read", "can_update", "can_delete", "created_by", "updated_at"}),
	}).Create(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return s.FetchOverride(userID, tableName), nil
}

// DeleteOverride removes the override row for (user, table). Removing an
// absent row is not an error.
func (s *PermissionsStore) DeleteOverride(userID uuid.UUID, tableName string) error {
	return s.db.Where("user_id = ? AND table_name = ?", userID, tableName).
		Delete(&model.UserTablePermissionOverride{}).Error
}

// AssignUserRole upserts the single role held by a user.
func (s *PermissionsStore) AssignUserRole(userID uuid.UUID, role string) error {
	if role == "" {
		return store.ErrEmptyKey
	}

	row := model.UserRoleAssignment{
		UserID: userID,
		Role:   role,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&row).Error
}

// ListRolePermissions returns all matrix rows for a role, or every row when
// role is empty.
func (s *PermissionsStore) ListRolePermissions(role string) ([]model.RoleTablePermission, error) {
	var permissions []model.RoleTablePermission
	query := s.db.Order("role, table_name")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

// ListOverridesForUser returns all override rows for a user.
func (s *PermissionsStore) ListOverridesForUser(userID uuid.UUID) ([]model.UserTablePermissionOverride, error) {
	var overrides []model.UserTablePermissionOverride
	if err := s.db.Where("user_id = ?", userID).Order("table_name").Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}
