// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"sync"
	"time"

	"github.com/danielhkuo/quickly-meet/idgen"
	"github.com/danielhkuo/quickly-meet/store"
)

// Service implements event creation, lookup, voting and tallying on top
// of a Store. Each mutating call is one load-modify-save cycle guarded by
// mu; writers in other processes can still overwrite each other.
type Service struct {
	store store.Store
	mu    sync.Mutex

	now   func() time.Time
	newID func(taken func(string) bool) (string, error)
}

func New(st store.Store) *Service {
	return &Service{
		store: st,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID: idgen.UniqueID,
	}
}
