// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollbase API server.

pollbase is a polling service: users register, sign in with cookie
sessions, create polls with options and an optional end date, vote once
per poll, and see live tallies and dashboard statistics.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or for a local sqlite file:

	go run main.go -d pollbase.db

# Configuration

  - DATABASE_URL (-d): connection string or sqlite path (required)
  - DATABASE_TYPE (-t): postgres or sqlite (default: sqlite)
  - PORT (-p): server port (default: 8080)
  - SESSION_TTL (--session-ttl): session lifetime (default: 168h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - poll: pure domain core (validation, lifecycle, tally, dashboard)
  - store: poll persistence gateway over database/sql
  - session: account and cookie-session gateway
  - handlers: HTTP request handlers (auth, polls, dashboard)
  - router: route definitions using Go 1.22+ routing
  - middleware: session resolution, logging, CORS, JSON helpers
  - models: domain and request/response types
  - auth: password hashing, tokens, registration policy
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
