package authz

import (
	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Resolver answers "can user U perform operation O on table T". It holds
// the only implementation of the precedence rule; all authorization
// decisions flow through it.
type Resolver struct {
	permissions store.PermissionsStore
}

// NewResolver creates a Resolver over the given permissions store
func NewResolver(permissions store.PermissionsStore) *Resolver {
	return &Resolver{permissions: permissions}
}

// Can resolves the effective permission for (user, table, action).
//
// Precedence, highest first:
//  1. An override row for (user, table) is authoritative for all four
//     flags.
//  2. Otherwise the user's role is consulted against the role matrix.
//  3. Any miss (no assignment, no matrix row, unknown table) denies.
//
// Can never returns an error: unknown identifiers and degraded reads fail
// closed.
func (r *Resolver) Can(userID uuid.UUID, tableName string, action model.Action) bool {
	if tableName == "" {
		return false
	}

	if override := r.permissions.FetchOverride(userID, tableName); override != nil {
		return override.Allows(action)
	}

	role := r.permissions.FetchUserRole(userID)
	if role == "" {
		return false
	}

	permission := r.permissions.FetchRolePermission(role, tableName)
	if permission == nil {
		return false
	}

	return permission.Allows(action)
}
