package endpoints

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// MockPermissionsStore implements store.PermissionsStore for testing using testify/mock
type MockPermissionsStore struct {
	mock.Mock
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RoleTablePermission), args.Error(1)
}

func (m *MockPermissionsStore) ListOverridesForUser(userID uuid.UUID) ([]model.UserTablePermissionOverride, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserTablePermissionOverride), args.Error(1)
}

// MockRolesStore implements store.RolesStore for testing using testify/mock
type MockRolesStore struct {
	mock.Mock
}

func (m *MockRolesStore) ListRoles() ([]model.Role, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRolesStore) RoleExists(level string) bool {
	args := m.Called(level)
	return args.Bool(0)
}

func (m *MockRolesStore) CreateRole(level string) (*model.Role, error) {
	args := m.Called(level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRolesStore) DeleteRole(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTablesStore implements store.TablesStore for testing using testify/mock
type MockTablesStore struct {
	mock.Mock
}

func (m *MockTablesStore) ListTables() ([]model.GovernedTable, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GovernedTable), args.Error(1)
}

func (m *MockTablesStore) FetchTable(tableName string) *model.GovernedTable {
	args := m.Called(tableName)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.GovernedTable)
}

func (m *MockTablesStore) CreateTable(table model.GovernedTable) (*model.GovernedTable, error) {
	args := m.Called(table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GovernedTable), args.Error(1)
}

func (m *MockTablesStore) UpdateTable(tableName string, displayName string, description string) (*model.GovernedTable, error) {
	args := m.Called(tableName, displayName, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GovernedTable), args.Error(1)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) FetchUser(id uuid.UUID) *model.User {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.User)
}

// MockRecordsStore implements store.RecordsStore for testing using testify/mock
type MockRecordsStore struct {
	mock.Mock
}

func (m *MockRecordsStore) ListRecords(tableName string) ([]map[string]any, error) {
	args := m.Called(tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockRecordsStore) FetchRecord(tableName string, recordID string) (map[string]any, error) {
	args := m.Called(tableName, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockRecordsStore) InsertRecord(tableName string, data map[string]any) (string, error) {
	args := m.Called(tableName, data)
	return args.String(0), args.Error(1)
}

func (m *MockRecordsStore) UpdateRecord(tableName string, recordID string, data map[string]any) (map[string]any, error) {
	args := m.Called(tableName, recordID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockRecordsStore) DeleteRecord(tableName string, recordID string) (map[string]any, error) {
	args := m.Called(tableName, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockAuditStore implements store.AuditStore for testing using testify/mock
type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) Append(entry *model.AuditLogEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockAuditStore) List(filter store.AuditFilter) ([]store.AuditEntry, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.AuditEntry), args.Error(1)
}

// MockDeliveryStore implements store.DeliveryStore for testing using testify/mock
type MockDeliveryStore struct {
	mock.Mock
}

func (m *MockDeliveryStore) Append(row *model.NotificationDeliveryLog) error {
	args := m.Called(row)
	return args.Error(0)
}

func (m *MockDeliveryStore) List() ([]model.NotificationDeliveryLog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NotificationDeliveryLog), args.Error(1)
}

func (m *MockDeliveryStore) DeleteOne(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDeliveryStore) DeleteAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
