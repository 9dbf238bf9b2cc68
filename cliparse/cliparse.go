// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store types
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

const (
	DefaultPort     = 3000
	DefaultDataFile = "events.json"
)

type Config struct {
	Port        int
	StoreType   string
	DataFile    string
	DatabaseURL string
	BaseURL     string
	LogLevel    string
}

// ParseFlags parses CLI flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-meet", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Prefix for vote and results links")

	// Storage config
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (file, sqlite or postgres)")
	fs.StringVar(&cfg.DataFile, "f", "", "Data file for the file store")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite or postgres stores")

	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreFile
		}
	}
	cfg.StoreType = strings.ToLower(cfg.StoreType)

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("DATA_FILE")
		if cfg.DataFile == "" {
			cfg.DataFile = DefaultDataFile
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	switch cfg.StoreType {
	case StoreFile:
	case StoreSQLite, StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for " + cfg.StoreType + " store (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return cfg, nil
}
