// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danielhkuo/quickly-meet/logger"
	"github.com/danielhkuo/quickly-meet/models"
)

// FileStore keeps the event set in a single JSON file
type FileStore struct {
	path string
	log  *slog.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.Component("store").With("backend", "file", "path", path),
	}
}

func (s *FileStore) Load(ctx context.Context) models.EventSet {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// First run
		return models.EventSet{}
	}
	if err != nil {
		s.log.Warn("failed to read events file, starting empty", "error", err)
		return models.EventSet{}
	}

	events, err := decodeEventSet(data)
	if err != nil {
		s.log.Warn("failed to parse events file, starting empty", "error", err)
		return models.EventSet{}
	}
	return events
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers see either the old or the new document.
func (s *FileStore) Save(ctx context.Context, events models.EventSet) error {
	data, err := encodeEventSet(events)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".events-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write events: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write events: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace events file: %w", err)
	}

	s.log.Debug("events saved", "count", len(events))
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
