// Package server provides the HTTP server for the back-office API.
//
// This package implements the core HTTP server that handles all REST API
// requests. It uses gorilla/mux for routing and provides middleware for
// session authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, sessions, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds the router, the database handle, the session
// authenticator, the permission resolver and mutation guard, and one
// store per concern (permissions, registries, governed records, audit
// trail, delivery log). Endpoints depend on the store interfaces, never
// on GORM directly, so handlers can be tested against mocks.
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all API endpoints including:
//
//   - /whoami - session introspection
//   - /permissions/... - effective permission resolution, matrix rows, overrides
//   - /roles, /tables - registries
//   - /tables/{table}/records/... - governed record CRUD
//   - /audit - audit trail queries
//   - /deliveries - notification delivery log
package server
