package audit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// mockAuditStore implements store.AuditStore using testify/mock
type mockAuditStore struct {
	mock.Mock
}

func (m *mockAuditStore) Append(entry *model.AuditLogEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *mockAuditStore) List(filter store.AuditFilter) ([]store.AuditEntry, error) {
	args := m.Called(filter)
	return args.Get(0).([]store.AuditEntry), args.Error(1)
}

func newBufferedRecorder(s store.AuditStore) (*Recorder, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)
	recorder := NewRecorder(s)
	recorder.SetLogger(logger)
	return recorder, &buf
}

func TestRecorderPersistsEntry(t *testing.T) {
	SetEnabled(true)

	auditStore := &mockAuditStore{}
	recorder, _ := newBufferedRecorder(auditStore)

	userID := uuid.New()
	auditStore.On("Append", mock.MatchedBy(func(entry *model.AuditLogEntry) bool {
		return entry.UserID == userID &&
			entry.Action == model.ActionUpdate &&
			entry.Table == "clientes" &&
			entry.RecordID == "42" &&
			entry.OldRecordData["name"] == "A" &&
			entry.NewRecordData["name"] == "B"
	})).Return(nil)

	recorder.Record(userID, model.ActionUpdate, "clientes", "42",
		map[string]any{"name": "A"}, map[string]any{"name": "B"})

	auditStore.AssertExpectations(t)
}

func TestRecorderSurfacesWriteFailure(t *testing.T) {
	SetEnabled(true)

	auditStore := &mockAuditStore{}
	recorder, buf := newBufferedRecorder(auditStore)

	auditStore.On("Append", mock.Anything).Return(errors.New("connection refused"))

	// Record must not panic or propagate the failure; the mutation it
	// shadows has already committed.
	recorder.Record(uuid.New(), model.ActionDelete, "franquias", "7",
		map[string]any{"name": "Unidade Centro"}, nil)

	output := buf.String()
	assert.Contains(t, output, "audit-failure")
	assert.Contains(t, output, "connection refused")
}

func TestRecorderDisabled(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	auditStore := &mockAuditStore{}
	recorder, buf := newBufferedRecorder(auditStore)

	recorder.Record(uuid.New(), model.ActionCreate, "clientes", "1", nil,
		map[string]any{"name": "A"})

	auditStore.AssertNotCalled(t, "Append", mock.Anything)
	assert.Empty(t, buf.String())
}

func TestRecorderReportDenial(t *testing.T) {
	auditStore := &mockAuditStore{}
	recorder, buf := newBufferedRecorder(auditStore)

	userID := uuid.New()
	recorder.ReportDenial(userID, model.ActionCreate, "senhas")

	output := buf.String()
	assert.Contains(t, output, "deny")
	assert.Contains(t, output, "senhas")
	assert.Contains(t, output, userID.String())
	auditStore.AssertNotCalled(t, "Append", mock.Anything)
}
