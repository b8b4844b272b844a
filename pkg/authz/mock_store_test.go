package authz

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/franqsuite/backoffice/pkg/model"
)

// MockPermissionsStore implements store.PermissionsStore for testing using
// testify/mock
type MockPermissionsStore struct {
	mock.Mock
}

func NewMockPermissionsStore() *MockPermissionsStore {
	return &MockPermissionsStore{}
}

func (m *MockPermissionsStore) FetchOverride(userID uuid.UUID, tableName string) *model.UserTablePermissionOverride {
	args := m.Called(userID, tableName)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.UserTablePermissionOverride)
}

func (m *MockPermissionsStore) FetchUserRole(userID uuid.UUID) string {
	args := m.Called(userID)
	return args.String(0)
}

func (m *MockPermissionsStore) FetchRolePermission(role string, tableName string) *model.RoleTablePermission {
	args := m.Called(role, tableName)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.RoleTablePermission)
}

func (m *MockPermissionsStore) UpsertRolePermission(role string, tableName string, flags model.PermissionFlags) (*model.RoleTablePermission, error) {
	args := m.Called(role, tableName, flags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RoleTablePermission), args.Error(1)
}

func (m *MockPermissionsStore) UpsertOverride(userID uuid.UUID, tableName string, flags model.PermissionFlags, createdBy *uuid.UUID) (*model.UserTablePermissionOverride, error) {
	args := m.Called(userID, tableName, flags, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTablePermissionOverride), args.Error(1)
}

func (m *MockPermissionsStore) DeleteOverride(userID uuid.UUID, tableName string) error {
	args := m.Called(userID, tableName)
	return args.Error(0)
}

func (m *MockPermissionsStore) AssignUserRole(userID uuid.UUID, role string) error {
	args := m.Called(userID, role)
	return args.Error(0)
}

func (m *MockPermissionsStore) ListRolePermissions(role string) ([]model.RoleTablePermission, error) {
	args := m.Called(role)
	return args.Get(0).([]model.RoleTablePermission), args.Error(1)
}

func (m *MockPermissionsStore) ListOverridesForUser(userID uuid.UUID) ([]model.UserTablePermissionOverride, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.UserTablePermissionOverride), args.Error(1)
}
