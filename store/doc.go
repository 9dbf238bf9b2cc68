// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists every event as a single JSON document.

# Backends

New picks a backend from the configuration:

	st, err := store.New(cfg)
	defer st.Close()

  - FileStore: the document lives in one file (default events.json).
    Saves go to a temp file that is renamed over the target.
  - SQLStore: the document lives in one row of event_document, through
    sqlx on modernc.org/sqlite ("sqlite") or lib/pq ("postgres").
  - MemoryStore: keeps the encoded document in memory for tests.

# Contract

Load never returns an error. A missing document is the normal first-run
case and yields an empty EventSet; an unreadable or corrupt document is
logged at warn level and also yields an empty set.

Save encodes the whole set and replaces the stored document. There is no
locking here: callers that need read-modify-write atomicity must provide
it (the service package does, within one process).

# Document Format

	{
	  "k3Fz9aQ": {
	    "id": "k3Fz9aQ",
	    "title": "Team sync",
	    "createdAt": "2026-01-01T09:00:00.123Z",
	    "options": [{"id": "opt_0", "label": "2026-01-01T10:00"}],
	    "votes": [{"name": "Bob", "votedAt": "...", "selections": ["opt_0"]}]
	  }
	}
*/
package store
