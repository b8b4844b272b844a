package audit

import "fmt"

// MutationEvent represents a committed mutation on a governed table
type MutationEvent struct {
	UserID   string
	Action   string
	Table    string
	RecordID string
}

func (e MutationEvent) MessageID() string {
	return e.Action
}

func (e MutationEvent) Message() string {
	return fmt.Sprintf("%s performed %s on %s/%s", e.UserID, e.Action, e.Table, e.RecordID)
}

func (e MutationEvent) Severity() Severity {
	return SeverityInfo
}

func (e MutationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e MutationEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"table":  e.Table,
			"record": e.RecordID,
		},
		SDIDAction: {
			"operation": e.Action,
			"result":    "success",
		},
	}
}

// DenialEvent represents an authorization denial
type DenialEvent struct {
	UserID string
	Action string
	Table  string
}

func (e DenialEvent) MessageID() string {
	return "deny"
}

func (e DenialEvent) Message() string {
	return fmt.Sprintf("%s denied %s on %s", e.UserID, e.Action, e.Table)
}

func (e DenialEvent) Severity() Severity {
	return SeverityWarning
}

func (e DenialEvent) Facility() int {
	return FacilityAuthPriv
}

func (e DenialEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"table": e.Table,
		},
		SDIDAction: {
			"operation": e.Action,
			"result":    "failure",
		},
	}
}

// WriteFailureEvent reports an audit row that could not be persisted. The
// governed mutation it shadows has already committed; the gap is
// operational, not transactional.
type WriteFailureEvent struct {
	UserID       string
	Action       string
	Table        string
	RecordID     string
	ErrorMessage string
}

func (e WriteFailureEvent) MessageID() string {
	return "audit-failure"
}

func (e WriteFailureEvent) Message() string {
	return fmt.Sprintf("failed to audit %s on %s/%s by %s: %s",
		e.Action, e.Table, e.RecordID, e.UserID, e.ErrorMessage)
}

func (e WriteFailureEvent) Severity() Severity {
	return SeverityError
}

func (e WriteFailureEvent) Facility() int {
	return FacilityAuthPriv
}

func (e WriteFailureEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"table":  e.Table,
			"record": e.RecordID,
		},
		SDIDAction: {
			"operation": e.Action,
			"result":    "unaudited",
			"error":     e.ErrorMessage,
		},
	}
}

// MatrixLoadEvent represents a permission matrix document being applied
type MatrixLoadEvent struct {
	Source    string
	Roles     int
	Grants    int
	Overrides int
	Success   bool
	Error     string
}

func (e MatrixLoadEvent) MessageID() string {
	return "matrix"
}

func (e MatrixLoadEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("loaded permission matrix from %s (%d roles, %d grants, %d overrides)",
			e.Source, e.Roles, e.Grants, e.Overrides)
	}
	return fmt.Sprintf("failed to load permission matrix from %s: %s", e.Source, e.Error)
}

func (e MatrixLoadEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityError
}

func (e MatrixLoadEvent) Facility() int {
	return FacilityAuth
}

func (e MatrixLoadEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDMatrix: {
			"source": e.Source,
		},
	}
	if e.Success {
		sd[SDIDMatrix]["result"] = "success"
	} else {
		sd[SDIDMatrix]["result"] = "failure"
	}
	return sd
}
