// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Meet API server.

Quickly Meet is a small scheduling poll service: an organizer creates an
event with a title and 2-30 proposed times, shares the vote link, and
everyone submits their name with the times they can make. Voting again
under the same name (any letter case) replaces the earlier answer.

# Starting the Server

With no configuration the server listens on port 3000 and keeps its data
in events.json in the working directory:

	go run .

Or with flags:

	go run . -p 8080 -f /var/lib/quickly-meet/events.json
	go run . -t sqlite -d /var/lib/quickly-meet/events.db
	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - STORE_TYPE (-t): file, sqlite or postgres (default: file)
  - DATA_FILE (-f): File store path (default: events.json)
  - DATABASE_URL (-d): Required for sqlite and postgres
  - BASE_URL (-base-url): Prefix for returned vote/results links
  - LOG_LEVEL (-log-level): debug, info, warn, error

# Architecture

  - handlers: HTTP request handlers (events, votes, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - service: Validation, id assignment, vote upsert, tallies
  - store: File, SQL and in-memory persistence of the event set
  - models: Domain and request/response types
  - idgen: Random event ids
  - db: SQL schema
  - logger: charmbracelet/log behind log/slog
  - cliparse: Configuration parsing

The HTML pages that call this API are served separately.
*/
package main
