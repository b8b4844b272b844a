package store

import (
	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/model"
)

// RolesStore abstracts the permission level registry
type RolesStore interface {
	// ListRoles returns all registered permission levels
	ListRoles() ([]model.Role, error)

	// RoleExists checks if a permission level is registered
	RoleExists(level string) bool

	// CreateRole registers a new permission level
	CreateRole(level string) (*model.Role, error)

	// DeleteRole removes a permission level from the registry
	DeleteRole(id uuid.UUID) error
}
