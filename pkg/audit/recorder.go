package audit

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Default store for operator message persistence (nil unless
// OPERATOR_DATABASE_URL is set)
var DefaultStore *Store

// Audit enabled state - defaults to true.
// Can be disabled via BACKOFFICE_AUDIT_ENABLED=false.
var (
	auditEnabled     = true
	auditEnabledOnce sync.Once
	storeInitOnce    sync.Once
)

// IsEnabled returns whether audit recording is enabled
func IsEnabled() bool {
	auditEnabledOnce.Do(func() {
		if env := os.Getenv("BACKOFFICE_AUDIT_ENABLED"); env != "" {
			auditEnabled = env != "false" && env != "0" && env != "no"
		}
	})
	return auditEnabled
}

// SetEnabled allows programmatic control of audit recording
// Note: This should be called before any Record calls for consistent behavior
func SetEnabled(enabled bool) {
	auditEnabled = enabled
}

// Log writes an event to the default operator logger and store
func Log(event Event) {
	DefaultLogger.Log(event)

	// Initialize store on first use
	storeInitOnce.Do(func() {
		var err error
		DefaultStore, err = NewStore()
		if err != nil {
			// Log error but don't fail - operator DB is optional
			fmt.Fprintf(os.Stderr, "audit: failed to connect to operator database: %v\n", err)
		}
	})

	// Persist to database if store is available
	if DefaultStore != nil {
		if err := DefaultStore.Save(event); err != nil {
			fmt.Fprintf(os.Stderr, "audit: failed to save operator event: %v\n", err)
		}
	}
}

// Recorder mirrors committed governed mutations into the audit trail.
// It is always invoked after the mutation has committed; a failed audit
// write is surfaced through the operator channel and never propagated
// back to the mutation path.
type Recorder struct {
	store  store.AuditStore
	logger *Logger
}

// NewRecorder creates a Recorder persisting through the given audit store
func NewRecorder(s store.AuditStore) *Recorder {
	return &Recorder{
		store:  s,
		logger: DefaultLogger,
	}
}

// SetLogger replaces the operator logger (for testing)
func (r *Recorder) SetLogger(l *Logger) {
	r.logger = l
}

// Record appends one audit row for a committed mutation. Best-effort:
// persistence failure is reported to operators, not returned.
func (r *Recorder) Record(userID uuid.UUID, action model.Action, tableName string, recordID string, oldData map[string]any, newData map[string]any) {
	if !IsEnabled() {
		return
	}

	r.logger.Log(MutationEvent{
		UserID:   userID.String(),
		Action:   action.String(),
		Table:    tableName,
		RecordID: recordID,
	})

	entry := &model.AuditLogEntry{
		UserID:   userID,
		Action:   action,
		Table:    tableName,
		RecordID: recordID,
	}
	if oldData != nil {
		entry.OldRecordData = datatypes.JSONMap(oldData)
	}
	if newData != nil {
		entry.NewRecordData = datatypes.JSONMap(newData)
	}

	if err := r.store.Append(entry); err != nil {
		r.logger.Log(WriteFailureEvent{
			UserID:       userID.String(),
			Action:       action.String(),
			Table:        tableName,
			RecordID:     recordID,
			ErrorMessage: err.Error(),
		})
	}
}

// ReportDenial surfaces an authorization denial on the operator channel
func (r *Recorder) ReportDenial(userID uuid.UUID, action model.Action, tableName string) {
	r.logger.Log(DenialEvent{
		UserID: userID.String(),
		Action: action.String(),
		Table:  tableName,
	})
}
