// Package audit provides the audit trail and the operator channel for the
// back-office core.
//
// Governed mutations are mirrored into the audit_logs table through the
// Recorder, always after the mutation has committed. Recording is
// best-effort: a failed audit write never rolls back the governed mutation,
// but it is surfaced to operators as an RFC5424 syslog-format line (and,
// when configured, persisted to a separate operator message store).
//
// # Event Types
//
//   - Mutation events (create/update/delete on governed tables)
//   - Authorization denial events
//   - Audit write failure events
//   - Permission matrix load events
//
// # Usage
//
//	recorder := audit.NewRecorder(auditStore)
//	recorder.Record(userID, model.ActionUpdate, "clientes", "42", old, new)
//
// Operator lines are written in a structured format suitable for security
// monitoring and compliance requirements.
package audit
