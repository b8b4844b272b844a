package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/franqsuite/backoffice/pkg/model"
)

func allActions() []model.Action {
	return model.ActionValues()
}

func TestResolverDeniesWithoutRoleOrOverride(t *testing.T) {
	permissions := NewMockPermissionsStore()
	resolver := NewResolver(permissions)

	userID := uuid.New()
	permissions.On("FetchOverride", userID, "clientes").Return(nil)
	permissions.On("FetchUserRole", userID).Return("")

	for _, action := range allActions() {
		assert.False(t, resolver.Can(userID, "clientes", action),
			"expected deny for %s with no role and no override", action)
	}
}

func TestResolverDeniesWhenRoleHasNoGrant(t *testing.T) {
	permissions := NewMockPermissionsStore()
	resolver := NewResolver(permissions)

	userID := uuid.New()
	permissions.On("FetchOverride", userID, "senhas").Return(nil)
	permissions.On("FetchUserRole", userID).Return("operador")
	permissions.On("FetchRolePermission", "operador", "senhas").Return(nil)

	for _, action := range allActions() {
		assert.False(t, resolver.Can(userID, "senhas", action),
			"expected deny for %s when the role has no matrix row", action)
	}
}

func TestResolverOverrideAlwaysWins(t *testing.T) {
	permissions := NewMockPermissionsStore()
	resolver := NewResolver(permissions)

	userID := uuid.New()
	// Role would allow update, but an override revokes it
	permissions.On("FetchOverride", userID, "clientes").Return(&model.UserTablePermissionOverride{
		UserID: userID,
		Table:  "clientes",
		PermissionFlags: model.PermissionFlags{
			CanCreate: true,
			CanRead:   true,
			CanUpdate: false,
			CanDelete: false,
		},
	})

	assert.False(t, resolver.Can(userID, "clientes", model.ActionUpdate))
	assert.True(t, resolver.Can(userID, "clientes", model.ActionRead))

	// The role matrix must not be consulted when an override exists
	permissions.AssertNotCalled(t, "FetchUserRole", userID)
	permissions.AssertNotCalled(t, "FetchRolePermission", "gerente", "clientes")
}

func TestResolverFallsBackToRole(t *testing.T) {
	permissions := NewMockPermissionsStore()
	resolver := NewResolver(permissions)

	userID := uuid.New()
	permissions.On("FetchOverride", userID, "senhas").Return(nil)
	permissions.On("FetchUserRole", userID).Return("operador")
	permissions.On("FetchRolePermission", "operador", "senhas").Return(&model.RoleTablePermission{
		Role:  "operador",
		Table: "senhas",
		PermissionFlags: model.PermissionFlags{
			CanRead:   true,
			CanCreate: false,
		},
	})

	assert.True(t, resolver.Can(userID, "senhas", model.ActionRead))
	assert.False(t, resolver.Can(userID, "senhas", model.ActionCreate))
	assert.False(t, resolver.Can(userID, "senhas", model.ActionUpdate))
	assert.False(t, resolver.Can(userID, "senhas", model.ActionDelete))
}

func TestResolverDeniesEmptyTableName(t *testing.T) {
	permissions := NewMockPermissionsStore()
	resolver := NewResolver(permissions)

	assert.False(t, resolver.Can(uuid.New(), "", model.ActionRead))
	permissions.AssertNotCalled(t, "FetchOverride")
}

func TestResolverAfterOverrideRemoval(t *testing.T) {
	permissions := NewMockPermissionsStore()
	resolver := NewResolver(permissions)

	userID := uuid.New()
	// Override was deleted: resolution reverts exactly to the role-derived
	// answer, not to an unconditional deny.
	permissions.On("FetchOverride", userID, "clientes").Return(nil)
	permissions.On("FetchUserRole", userID).Return("gerente")
	permissions.On("FetchRolePermission", "gerente", "clientes").Return(&model.RoleTablePermission{
		Role:  "gerente",
		Table: "clientes",
		PermissionFlags: model.PermissionFlags{
			CanCreate: true,
			CanRead:   true,
			CanUpdate: true,
			CanDelete: true,
		},
	})

	for _, action := range allActions() {
		assert.True(t, resolver.Can(userID, "clientes", action))
	}
}
