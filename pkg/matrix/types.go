package matrix

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/franqsuite/backoffice/pkg/model"
)

// Document is the root of a permission matrix file.
type Document struct {
	Roles     []string        `yaml:"roles"`
	Tables    []TableEntry    `yaml:"tables"`
	Grants    []GrantEntry    `yaml:"grants"`
	Overrides []OverrideEntry `yaml:"overrides"`
}

// TableEntry declares a governed table. The scalar form
//
//	tables:
//	  - senhas
//
// is shorthand for an entry with only table_name set.
type TableEntry struct {
	TableName   string `yaml:"table_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

// UnmarshalYAML accepts both the scalar shorthand and the mapping form.
func (t *TableEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.TableName = node.Value
		return nil
	}

	type rawTableEntry TableEntry
	return node.Decode((*rawTableEntry)(t))
}

// GrantEntry declares one permission matrix row. Flags left out of the
// document are false: a grant always writes all four flags.
type GrantEntry struct {
	Role   string `yaml:"role"`
	Table  string `yaml:"table"`
	Create bool   `yaml:"create"`
	Read   bool   `yaml:"read"`
	Update bool   `yaml:"update"`
	Delete bool   `yaml:"delete"`
}

// Flags returns the grant's permission flags as a model value.
func (g GrantEntry) Flags() model.PermissionFlags {
	return model.PermissionFlags{
		CanCreate: g.Create,
		CanRead:   g.Read,
		CanUpdate: g.Update,
		CanDelete: g.Delete,
	}
}

// OverrideEntry declares a per-user override row. Like grants, overrides
// are all-or-nothing: every flag is written, absent flags as false.
type OverrideEntry struct {
	UserID string `yaml:"user_id"`
	Table  string `yaml:"table"`
	Create bool   `yaml:"create"`
	Read   bool   `yaml:"read"`
	Update bool   `yaml:"update"`
	Delete bool   `yaml:"delete"`
}

// Flags returns the override's permission flags as a model value.
func (o OverrideEntry) Flags() model.PermissionFlags {
	return model.PermissionFlags{
		CanCreate: o.Create,
		CanRead:   o.Read,
		CanUpdate: o.Update,
		CanDelete: o.Delete,
	}
}

// Parse decodes a matrix document and validates its entries.
func Parse(contents []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse matrix document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks structural requirements the YAML schema cannot express.
func (d *Document) Validate() error {
	for i, role := range d.Roles {
		if role == "" {
			return fmt.Errorf("roles[%d]: role name must not be empty", i)
		}
	}

	for i, table := range d.Tables {
		if table.TableName == "" {
			return fmt.Errorf("tables[%d]: table_name must not be empty", i)
		}
	}

	for i, grant := range d.Grants {
		if grant.Role == "" || grant.Table == "" {
			return fmt.Errorf("grants[%d]: role and table must not be empty", i)
		}
	}

	for i, override := range d.Overrides {
		if override.Table == "" {
			return fmt.Errorf("overrides[%d]: table must not be empty", i)
		}
		if _, err := uuid.Parse(override.UserID); err != nil {
			return fmt.Errorf("overrides[%d]: user_id is not a valid UUID: %w", i, err)
		}
	}

	return nil
}
