package authz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/audit"
	"github.com/franqsuite/backoffice/pkg/model"
)

// ErrForbidden is returned when the resolver denies a governed mutation.
// Callers surface it as a generic forbidden outcome without detailing
// which flag failed.
var ErrForbidden = errors.New("forbidden")

// Mutation describes one permission-governed write. Commit performs the
// actual row mutation and reports the affected record id with its before
// and after snapshots (nil on the side that doesn't exist).
type Mutation struct {
	UserID uuid.UUID
	Table  string
	Action model.Action
	Commit func() (recordID string, oldData map[string]any, newData map[string]any, err error)
}

// Guard runs governed mutations through the authorization sequence:
// resolve, commit, audit.
type Guard struct {
	resolver *Resolver
	recorder *audit.Recorder
}

// NewGuard creates a Guard
func NewGuard(resolver *Resolver, recorder *audit.Recorder) *Guard {
	return &Guard{resolver: resolver, recorder: recorder}
}

// Run executes the mutation. A denial is terminal and never reaches the
// store. After a successful commit the mutation is mirrored into the audit
// trail; that write is best-effort and cannot fail the call.
func (g *Guard) Run(m Mutation) (string, error) {
	if !g.resolver.Can(m.UserID, m.Table, m.Action) {
		g.recorder.ReportDenial(m.UserID, m.Action, m.Table)
		return "", ErrForbidden
	}

	recordID, oldData, newData, err := m.Commit()
	if err != nil {
		return "", err
	}

	g.recorder.Record(m.UserID, m.Action, m.Table, recordID, oldData, newData)
	return recordID, nil
}
