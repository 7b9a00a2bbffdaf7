// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL backends and creates their schema.

# Drivers

Open selects the driver from the configured database type:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, no cgo)

	conn, err := db.Open(cfg)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Open calls it for you.

# Tables

  - kv: key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP

Everything the application persists is a string value under a namespaced key;
see package kvstore for the key layout.
*/
package db
