// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/quickly-meet/models"
)

// MemoryStore holds the encoded document in memory. Used by tests.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int

	// SaveErr, when set, is returned by every Save
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) models.EventSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return models.EventSet{}
	}
	events, err := decodeEventSet(s.data)
	if err != nil {
		return models.EventSet{}
	}
	return events
}

func (s *MemoryStore) Save(ctx context.Context, events models.EventSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := encodeEventSet(events)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

// Saves reports how many times Save succeeded
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStore) Close() error {
	return nil
}
