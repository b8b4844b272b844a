// Package store provides storage abstractions for the back-office server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and the permission resolver to be decoupled from the
// specific database implementation. This enables easier testing with mocks
// and potential support for different storage backends.
//
// # Available Stores
//
//   - PermissionsStore: role matrix, overrides, and user-role assignments
//   - RolesStore: permission level registry
//   - TablesStore: governed table registry
//   - UsersStore: identity lookups
//   - RecordsStore: row-level CRUD on governed tables
//   - AuditStore: append-only audit trail
//   - DeliveryStore: notification delivery ledger
//   - HealthStore: connectivity checks
//
// # Usage
//
//	permissions := gorm.NewPermissionsStore(db)
//	row, err := permissions.UpsertRolePermission("operador", "senhas", flags)
//	if err != nil {
//	    // Handle validation failure
//	}
package store
