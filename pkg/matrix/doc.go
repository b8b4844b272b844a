// Package matrix parses and applies permission matrix documents.
//
// A matrix document is a YAML file declaring roles, governed tables, role
// grants, and user overrides in one place. Loading a document is
// idempotent: every write goes through the same keyed upserts as the API,
// so re-applying an unchanged document is a no-op and applying a changed
// one replaces exactly the listed rows.
//
// # Document Format
//
//	roles:
//	  - operador
//	  - gerente
//	tables:
//	  - table_name: senhas
//	    display_name: Senhas
//	grants:
//	  - role: operador
//	    table: senhas
//	    read: true
//	overrides:
//	  - user_id: 5f4c2f7e-9a6e-4e5d-8f3a-111111111111
//	    table: clientes
//	    read: true
//	    update: true
package matrix
