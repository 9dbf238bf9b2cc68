// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/models"
)

// Store persists the whole event set as one document.
//
// Load never fails: a missing or unreadable document yields an empty set.
// Save replaces the whole document.
type Store interface {
	Load(ctx context.Context) models.EventSet
	Save(ctx context.Context, events models.EventSet) error
	Close() error
}

// New opens the store selected by cfg.StoreType
func New(cfg cliparse.Config) (Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreFile:
		return NewFileStore(cfg.DataFile), nil
	case cliparse.StoreSQLite, cliparse.StorePostgres:
		return OpenSQLStore(cfg.StoreType, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
	}
}

func encodeEventSet(events models.EventSet) ([]byte, error) {
	if events == nil {
		events = models.EventSet{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode events: %w", err)
	}
	return data, nil
}

func decodeEventSet(data []byte) (models.EventSet, error) {
	var events models.EventSet
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	if events == nil {
		events = models.EventSet{}
	}
	for id, event := range events {
		if event == nil {
			delete(events, id)
		}
	}
	return events, nil
}
