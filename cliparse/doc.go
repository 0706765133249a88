// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - SessionTTL: Session lifetime (default: 168h)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-session-ttl Session lifetime

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SESSION_TTL   → -session-ttl

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - SESSION_TTL must parse as a duration and be positive
*/
package cliparse
