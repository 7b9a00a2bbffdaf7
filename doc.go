// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ai-partner API server.

ai-partner backs the "How should humans and AI work together?" page: a
slider that splits a task between human and AI and names the resulting
working style, an agree/neutral/disagree poll, and a dark/light theme.

# Starting the Server

With no settings the server keeps everything in a sqlite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then the environment (a .env file is loaded
when present), then an optional YAML file, then defaults:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): memory, sqlite, postgres or firestore (default: sqlite)
  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - FIRESTORE_PROJECT (-firestore-project): GCP project for firestore
  - POLL_MODE (-mode): ledger (one vote per name) or counter (anonymous tally)
  - APP_ENV (-env): local logs text at debug level, anything else JSON
  - CORS_ORIGINS (-origins): comma-separated allowed origins (default: *)
  - CONFIG_FILE (-c): YAML config file

# Architecture

  - handlers: HTTP request handlers (poll, balance, theme, devices)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - poll: Vote ledger, anonymous counter and percentages
  - category: Slider categories and shares
  - theme: Theme preference
  - kvstore: Key/value persistence (memory, SQL, firestore)
  - db: Connection and schema
  - cliparse: Configuration parsing
  - logging: slog setup
  - tui: Terminal front end, run with cmd/partner-tui

See package documentation for each component.
*/
package main
