package authz

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/franqsuite/backoffice/pkg/audit"
	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// recordingAuditStore captures appended entries in memory
type recordingAuditStore struct {
	entries []*model.AuditLogEntry
	fail    bool
}

func (s *recordingAuditStore) Append(entry *model.AuditLogEntry) error {
	if s.fail {
		return errors.New("audit store unavailable")
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingAuditStore) List(store.AuditFilter) ([]store.AuditEntry, error) {
	return nil, nil
}

func newTestGuard(permissions *MockPermissionsStore, auditStore store.AuditStore) *Guard {
	resolver := NewResolver(permissions)
	recorder := audit.NewRecorder(auditStore)
	return NewGuard(resolver, recorder)
}

func grantAll(permissions *MockPermissionsStore, userID uuid.UUID, table string) {
	permissions.On("FetchOverride", userID, table).Return(nil)
	permissions.On("FetchUserRole", userID).Return("gerente")
	permissions.On("FetchRolePermission", "gerente", table).Return(&model.RoleTablePermission{
		Role:  "gerente",
		Table: table,
		PermissionFlags: model.PermissionFlags{
			CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true,
		},
	})
}

func TestGuardDenialNeverCommits(t *testing.T) {
	audit.SetEnabled(true)

	permissions := NewMockPermissionsStore()
	auditStore := &recordingAuditStore{}
	guard := newTestGuard(permissions, auditStore)

	userID := uuid.New()
	permissions.On("FetchOverride", userID, "senhas").Return(nil)
	permissions.On("FetchUserRole", userID).Return("")

	committed := false
	_, err := guard.Run(Mutation{
		UserID: userID,
		Table:  "senhas",
		Action: model.ActionDelete,
		Commit: func() (string, map[string]any, map[string]any, error) {
			committed = true
			return "1", nil, nil, nil
		},
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, committed, "a denied mutation must never reach the store")
	assert.Empty(t, auditStore.entries, "denials are not audit rows")
}

func TestGuardCommitsThenAudits(t *testing.T) {
	audit.SetEnabled(true)

	permissions := NewMockPermissionsStore()
	auditStore := &recordingAuditStore{}
	guard := newTestGuard(permissions, auditStore)

	userID := uuid.New()
	grantAll(permissions, userID, "clientes")

	recordID, err := guard.Run(Mutation{
		UserID: userID,
		Table:  "clientes",
		Action: model.ActionUpdate,
		Commit: func() (string, map[string]any, map[string]any, error) {
			return "42", map[string]any{"name": "A"}, map[string]any{"name": "B"}, nil
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "42", recordID)
	if assert.Len(t, auditStore.entries, 1) {
		entry := auditStore.entries[0]
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, model.ActionUpdate, entry.Action)
		assert.Equal(t, "clientes", entry.Table)
		assert.Equal(t, "42", entry.RecordID)
		assert.Equal(t, "A", entry.OldRecordData["name"])
		assert.Equal(t, "B", entry.NewRecordData["name"])
	}
}

func TestGuardCommitFailureSkipsAudit(t *testing.T) {
	audit.SetEnabled(true)

	permissions := NewMockPermissionsStore()
	auditStore := &recordingAuditStore{}
	guard := newTestGuard(permissions, auditStore)

	userID := uuid.New()
	grantAll(permissions, userID, "clientes")

	wantErr := errors.New("constraint violation")
	_, err := guard.Run(Mutation{
		UserID: userID,
		Table:  "clientes",
		Action: model.ActionCreate,
		Commit: func() (string, map[string]any, map[string]any, error) {
			return "", nil, nil, wantErr
		},
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, auditStore.entries)
}

func TestGuardAuditFailureDoesNotFailMutation(t *testing.T) {
	audit.SetEnabled(true)

	permissions := NewMockPermissionsStore()
	auditStore := &recordingAuditStore{fail: true}
	guard := newTestGuard(permissions, auditStore)

	userID := uuid.New()
	grantAll(permissions, userID, "clientes")

	recordID, err := guard.Run(Mutation{
		UserID: userID,
		Table:  "clientes",
		Action: model.ActionDelete,
		Commit: func() (string, map[string]any, map[string]any, error) {
			return "7", map[string]any{"name": "X"}, nil, nil
		},
	})

	// Committed but unaudited: data is correct, the gap is operational
	assert.NoError(t, err)
	assert.Equal(t, "7", recordID)
}
