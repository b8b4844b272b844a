// Package authz implements effective permission resolution for governed
// tables.
//
// The Resolver is the single implementation of the override-then-role
// precedence rule: a user-table override, when present, fully replaces the
// role-derived answer for that pair; otherwise the user's role is looked up
// in the role matrix; any miss along the way resolves to deny. Callers
// never consult the permission tables directly.
//
// The Guard wraps a governed mutation in the authorization sequence:
// resolve, commit, then best-effort audit. A denied request never reaches
// the store; a failed audit write never rolls back a committed mutation.
package authz
