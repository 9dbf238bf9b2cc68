// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL-backed store.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The statement is plain
enough to run unchanged on SQLite and PostgreSQL.

# Tables

  - event_document: one row (id = DocumentID) whose payload is the JSON
    event set, byte-for-byte the same document the file store writes.

Storing the set as a single document keeps the whole-state replace
semantics of the file store: every save rewrites the payload, and a load
never sees half of a write.
*/
package db
