// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-meet/models"
)

// CreateEvent validates the input and stores a new event with no votes
func (s *Service) CreateEvent(ctx context.Context, title string, options []string) (*models.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid(MsgTitleRequired)
	}

	if len(options) < models.MinOptions {
		return nil, invalid(MsgTooFewOptions)
	}
	if len(options) > models.MaxOptions {
		return nil, invalid(MsgTooManyOptions)
	}

	built := make([]models.Option, len(options))
	for i, label := range options {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, invalid(MsgEmptyOption)
		}
		built[i] = models.Option{ID: fmt.Sprintf("opt_%d", i), Label: label}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.store.Load(ctx)

	id, err := s.newID(func(id string) bool {
		_, taken := events[id]
		return taken
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate event id: %w", err)
	}

	event := &models.Event{
		ID:        id,
		Title:     title,
		CreatedAt: s.now(),
		Options:   built,
		Votes:     []models.Vote{},
	}
	events[id] = event

	if err := s.store.Save(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	slog.Info("event created", "event_id", id, "options", len(built))
	return event.Clone(), nil
}

// GetEvent returns the event or ErrEventNotFound
func (s *Service) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, ok := s.store.Load(ctx)[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Results tallies votes per option, in option order
func (s *Service) Results(ctx context.Context, id string) (*models.EventResults, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	results := &models.EventResults{
		EventID:       event.ID,
		Title:         event.Title,
		TotalVotes:    len(event.Votes),
		Options:       make([]models.OptionTally, len(event.Options)),
		BestOptionIDs: []string{},
	}

	index := make(map[string]int, len(event.Options))
	for i, opt := range event.Options {
		index[opt.ID] = i
		results.Options[i] = models.OptionTally{OptionID: opt.ID, Label: opt.Label, Voters: []string{}}
	}

	for _, vote := range event.Votes {
		// A voter counts once per option even if the selection repeats
		seen := make(map[string]bool, len(vote.Selections))
		for _, sel := range vote.Selections {
			i, ok := index[sel]
			if !ok || seen[sel] {
				continue
			}
			seen[sel] = true
			results.Options[i].Count++
			results.Options[i].Voters = append(results.Options[i].Voters, vote.Name)
		}
	}

	best := 0
	for _, tally := range results.Options {
		best = max(best, tally.Count)
	}
	if best > 0 {
		for _, tally := range results.Options {
			if tally.Count == best {
				results.BestOptionIDs = append(results.BestOptionIDs, tally.OptionID)
			}
		}
	}

	return results, nil
}
