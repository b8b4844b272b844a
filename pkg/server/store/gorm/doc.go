// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// This package contains concrete implementations that use GORM for database
// operations. The interfaces they implement are defined in pkg/server/store.
//
// Keyed writes (matrix rows, overrides, role assignments) use PostgreSQL's
// INSERT ... ON CONFLICT so a concurrent upsert on the same key is a single
// atomic replace of all four flags, never a read-then-write.
package gorm
