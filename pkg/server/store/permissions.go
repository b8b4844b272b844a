package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/model"
)

// ErrEmptyKey is returned when an upsert is attempted with an empty role
// or table name
var ErrEmptyKey = errors.New("role and table_name must not be empty")

// PermissionsStore abstracts the permission matrix, user overrides, and
// user-role assignments.
//
// The Fetch methods deliberately swallow lookup errors and report absence:
// the resolver treats any miss as deny-all, so a degraded read path fails
// closed instead of failing loud.
type PermissionsStore interface {
	// FetchOverride returns the override row for (user, table), or nil
	// when the user has no override for that table.
	FetchOverride(userID uuid.UUID, tableName string) *model.UserTablePermissionOverride

	// FetchUserRole returns the role assigned to the user, or "" when the
	// user has no assignment.
	FetchUserRole(userID uuid.UUID) string

	// FetchRolePermission returns the matrix row for (role, table), or nil
	// when no grant exists.
	FetchRolePermission(role string, tableName string) *model.RoleTablePermission

	// UpsertRolePermission atomically inserts or replaces the matrix row
	// keyed on (role, table). All four flags are written together.
	// Returns ErrEmptyKey when role or tableName is empty.
	UpsertRolePermission(role string, tableName string, flags model.PermissionFlags) (*model.RoleTablePermission, error)

	// UpsertOverride atomically inserts or replaces the override row keyed
	// on (user, table). Returns ErrEmptyKey when tableName is empty.
	UpsertOverride(userID uuid.UUID, tableName string, flags model.PermissionFlags, createdBy *uuid.UUID) (*model.UserTablePermissionOverride, error)

	// DeleteOverride removes the override row for (user, table), reverting
	// resolution to the role fallback. Removing an absent row is not an
	// error.
	DeleteOverride(userID uuid.UUID, tableName string) error

	// AssignUserRole upserts the single role held by a user.
	AssignUserRole(userID uuid.UUID, role string) error

	// ListRolePermissions returns all matrix rows for a role, or every row
	// when role is empty.
	ListRolePermissions(role string) ([]model.RoleTablePermission, error)

	// ListOverridesForUser returns all override rows for a user.
	ListOverridesForUser(userID uuid.UUID) ([]model.UserTablePermissionOverride, error)
}
