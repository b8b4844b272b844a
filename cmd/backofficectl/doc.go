// Package backofficectl provides the command line interface for the
// franchise back-office server.
//
// The back-office is the authorization and accountability core for
// franchise management: per-table CRUD permissions resolved from role
// grants and per-user overrides, an append-only audit trail of governed
// mutations, and a ledger of notification delivery attempts.
//
// # Quick Start
//
//	# Generate a session signing key
//	head -c 32 /dev/urandom | base64 > session_key
//	export BACKOFFICE_SESSION_KEY=$(cat session_key)
//
//	# Run database migrations
//	backofficectl db migrate
//
//	# Load the permission matrix
//	backofficectl matrix load matrix.yml
//
//	# Start the server
//	backofficectl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - BACKOFFICE_SESSION_KEY: Base64-encoded HMAC key for session tokens
//   - BACKOFFICE_AUDIT_ENABLED: Set to "false" to disable audit mirroring
//   - BACKOFFICE_LOG_LEVEL: Log level (debug enables SQL logging)
//   - OPERATOR_DATABASE_URL: Optional database for operator messages
//   - PORT: Server port (default: 8000)
package main
