// Package model defines the database models for the back-office core.
//
// This package contains GORM models that map to the authorization and
// accountability schema. The schema mirrors the hosted back-office database
// so records stay interchangeable with the managed deployment.
//
// # Core Models
//
//   - Role: named permission levels available to users
//   - GovernedTable: logical tables whose CRUD operations are permission-checked
//   - UserRoleAssignment: the single role held by a user
//   - RoleTablePermission: per (role, table) CRUD grant
//   - UserTablePermissionOverride: per (user, table) grant superseding the role matrix
//   - AuditLogEntry: append-only record of governed mutations
//   - NotificationDeliveryLog: append-only record of outbound delivery attempts
//   - User: identity rows joined for display names at audit query time
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - roles: permission level registry
//   - governed_tables: governed resource registry
//   - user_roles: one role per user
//   - role_table_permissions: role matrix, unique on (role, table_name)
//   - user_table_permissions: overrides, unique on (user_id, table_name)
//   - audit_logs: immutable mutation history
//   - notification_delivery_logs: delivery attempt ledger
//   - users: identity reference data
package model
