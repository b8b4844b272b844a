// Package config provides configuration management for the back-office core.
//
// This package handles loading and validating server configuration from
// environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - BACKOFFICE_SESSION_SECRET: Session token signing secret
//   - BACKOFFICE_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
