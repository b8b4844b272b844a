package matrix

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/audit"
	"github.com/franqsuite/backoffice/pkg/model"
	"github.com/franqsuite/backoffice/pkg/server/store"
)

// Result summarises the rows a document load touched.
type Result struct {
	RolesCreated     int
	TablesRegistered int
	GrantsApplied    int
	OverridesApplied int
}

// Loader applies parsed matrix documents through the registry and
// permission stores. Applying is idempotent: rows are keyed upserts, so a
// load never duplicates and never touches rows the document does not name.
type Loader struct {
	permissions store.PermissionsStore
	roles       store.RolesStore
	tables      store.TablesStore

	source    string
	appliedBy *uuid.UUID
	logger    *audit.Logger
}

// NewLoader returns a Loader over the given stores.
func NewLoader(
	permissions store.PermissionsStore,
	roles store.RolesStore,
	tables store.TablesStore,
) *Loader {
	return &Loader{
		permissions: permissions,
		roles:       roles,
		tables:      tables,
		source:      "inline",
	}
}

// WithSource labels the load for the operator channel, usually with the
// document's file path.
func (l *Loader) WithSource(source string) *Loader {
	l.source = source
	return l
}

// WithAppliedBy records the administrator responsible for overrides
// created by the load.
func (l *Loader) WithAppliedBy(userID uuid.UUID) *Loader {
	l.appliedBy = &userID
	return l
}

// WithLogger routes load outcomes to an operator channel logger.
func (l *Loader) WithLogger(logger *audit.Logger) *Loader {
	l.logger = logger
	return l
}

// LoadFile parses and applies the matrix document at path.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open matrix document: %w", err)
	}
	defer f.Close()

	return l.WithSource(path).LoadFromReader(f)
}

// LoadFromReader parses and applies a matrix document.
func (l *Loader) LoadFromReader(reader io.Reader) (*Result, error) {
	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("unable to read matrix document: %w", err)
	}

	doc, err := Parse(contents)
	if err != nil {
		l.report(nil, err)
		return nil, err
	}

	result, err := l.Apply(doc)
	l.report(result, err)
	return result, err
}

// Apply writes a validated document through the stores. Entries are
// applied in declaration order; the first store error aborts the load,
// leaving earlier entries in place.
func (l *Loader) Apply(doc *Document) (*Result, error) {
	result := &Result{}

	for _, role := range doc.Roles {
		if l.roles.RoleExists(role) {
			continue
		}
		if _, err := l.roles.CreateRole(role); err != nil {
			return result, fmt.Errorf("unable to create role %q: %w", role, err)
		}
		result.RolesCreated++
	}

	for _, table := range doc.Tables {
		if existing := l.tables.FetchTable(table.TableName); existing != nil {
			if table.DisplayName == "" && table.Description == "" {
				continue
			}
			if _, err := l.tables.UpdateTable(table.TableName, table.DisplayName, table.Description); err != nil {
				return result, fmt.Errorf("unable to update table %q: %w", table.TableName, err)
			}
			continue
		}
		if _, err := l.tables.CreateTable(model.GovernedTable{
			Name:        table.TableName,
			DisplayName: table.DisplayName,
			Description: table.Description,
		}); err != nil {
			return result, fmt.Errorf("unable to register table %q: %w", table.TableName, err)
		}
		result.TablesRegistered++
	}

	for _, grant := range doc.Grants {
		if _, err := l.permissions.UpsertRolePermission(grant.Role, grant.Table, grant.Flags()); err != nil {
			return result, fmt.Errorf("unable to apply grant %s/%s: %w", grant.Role, grant.Table, err)
		}
		result.GrantsApplied++
	}

	for _, override := range doc.Overrides {
		userID, err := uuid.Parse(override.UserID)
		if err != nil {
			return result, fmt.Errorf("invalid override user_id %q: %w", override.UserID, err)
		}
		if _, err := l.permissions.UpsertOverride(userID, override.Table, override.Flags(), l.appliedBy); err != nil {
			return result, fmt.Errorf("unable to apply override %s/%s: %w", override.UserID, override.Table, err)
		}
		result.OverridesApplied++
	}

	return result, nil
}

func (l *Loader) report(result *Result, err error) {
	if l.logger == nil {
		return
	}

	event := audit.MatrixLoadEvent{Source: l.source, Success: err == nil}
	if err != nil {
		event.Error = err.Error()
	}
	if result != nil {
		event.Roles = result.RolesCreated
		event.Grants = result.GrantsApplied
		event.Overrides = result.OverridesApplied
	}
	l.logger.Log(event)
}
