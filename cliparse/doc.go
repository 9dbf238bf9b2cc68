// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - StoreType: file, sqlite or postgres (default: file)
  - DataFile: JSON document path for the file store (default: events.json)
  - DatabaseURL: connection string for the sqlite and postgres stores
  - BaseURL: prefix for voteUrl and resultsUrl (default: relative links)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p          Server port
	-t          Store type
	-f          Data file
	-d          Database URL
	-base-url   Link prefix
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	STORE_TYPE   → -t
	DATA_FILE    → -f
	DATABASE_URL → -d
	BASE_URL     → -base-url
	LOG_LEVEL    → -log-level

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is outside 1-65535
  - the store type is unknown
  - a sqlite or postgres store has no database URL
*/
package cliparse
