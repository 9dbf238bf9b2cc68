// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/quickly-meet/models"
)

// SubmitVote records a vote, replacing in place any earlier vote whose
// name matches case-insensitively. Selections are stored as given.
func (s *Service) SubmitVote(ctx context.Context, eventID, name string, selections []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.store.Load(ctx)
	event, ok := events[eventID]
	if !ok {
		return ErrEventNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return invalid(MsgNameRequired)
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return invalid(MsgNameTooLong)
	}

	if len(selections) == 0 {
		return invalid(MsgNoSelections)
	}
	valid := make(map[string]bool, len(event.Options))
	for _, opt := range event.Options {
		valid[opt.ID] = true
	}
	for _, sel := range selections {
		if !valid[sel] {
			return invalid(MsgInvalidSelected)
		}
	}

	vote := models.Vote{
		Name:       name,
		VotedAt:    s.now(),
		Selections: append([]string{}, selections...),
	}

	// Stored names are already trimmed
	replaced := false
	for i := range event.Votes {
		if strings.EqualFold(event.Votes[i].Name, name) {
			event.Votes[i] = vote
			replaced = true
			break
		}
	}
	if !replaced {
		event.Votes = append(event.Votes, vote)
	}

	if err := s.store.Save(ctx, events); err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}

	slog.Info("vote submitted", "event_id", eventID, "is_update", replaced)
	return nil
}
