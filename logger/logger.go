// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// Initialize sets up the global charm logger and installs it as the
// slog default, so slog call sites across the server go through it.
func Initialize(logLevel string) *log.Logger {
	return InitializeWithWriter(os.Stderr, logLevel)
}

// InitializeWithWriter is Initialize with a custom output
func InitializeWithWriter(w io.Writer, logLevel string) *log.Logger {
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           ParseLevel(logLevel),
	})

	slog.SetDefault(slog.New(Logger))

	Logger.Debug("Logger initialized", "level", strings.ToLower(logLevel))
	return Logger
}

// ParseLevel maps a level name to a charm log level, defaulting to info
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Component returns an slog logger tagged with a component name
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}
