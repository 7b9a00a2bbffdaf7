// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore provides the string key/value persistence used by the poll
ledger, the anonymous counter, the theme preference, and device records.

# Backends

	kv := kvstore.NewMemory()             // tests, DATABASE_TYPE=memory
	kv := kvstore.NewSQL(dbConn)          // postgres or sqlite, see package db
	kv := kvstore.NewFirestore(client, "") // Cloud Firestore

# Scoping

Browser storage is per origin; here it is per device:

	scoped := kvstore.Prefixed(kv, "device/"+deviceID+"/")

# Degraded Mode

Fallback never returns backend errors. A failed read or write is logged and
served from an in-memory shadow so the caller keeps working for the session:

	kv = kvstore.Fallback(kvstore.NewSQL(dbConn))
*/
package kvstore
