// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is ISO 8601 in UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Option and name limits
const (
	MinOptions    = 2
	MaxOptions    = 30
	MaxNameLength = 50
)

// Request types

// Fields are decoded loosely so that a wrong JSON type is reported as a
// validation message instead of a decode failure.
type CreateEventRequest struct {
	Title   any `json:"title"`
	Options any `json:"options"`
}

type SubmitVoteRequest struct {
	Name       any `json:"name"`
	Selections any `json:"selections"`
}

// Response types

type CreateEventResponse struct {
	ID         string `json:"id"`
	VoteURL    string `json:"voteUrl"`
	ResultsURL string `json:"resultsUrl"`
}

type SubmitVoteResponse struct {
	OK bool `json:"ok"`
}

// Domain types

type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Options   []Option  `json:"options"`
	Votes     []Vote    `json:"votes"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Vote struct {
	Name       string    `json:"name"`
	VotedAt    time.Time `json:"votedAt"`
	Selections []string  `json:"selections"`
}

// MarshalJSON writes createdAt with exactly three fractional digits
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{plain(e), e.CreatedAt.UTC().Format(TimestampLayout)})
}

// MarshalJSON writes votedAt with exactly three fractional digits
func (v Vote) MarshalJSON() ([]byte, error) {
	type plain Vote
	return json.Marshal(struct {
		plain
		VotedAt string `json:"votedAt"`
	}{plain(v), v.VotedAt.UTC().Format(TimestampLayout)})
}

// EventSet is the whole persisted state: event id -> event.
type EventSet map[string]*Event

// Clone returns a deep copy so callers can mutate freely.
func (e *Event) Clone() *Event {
	c := *e
	c.Options = append([]Option{}, e.Options...)
	c.Votes = make([]Vote, len(e.Votes))
	for i, v := range e.Votes {
		v.Selections = append([]string{}, v.Selections...)
		c.Votes[i] = v
	}
	return &c
}

// Results types

type OptionTally struct {
	OptionID string   `json:"id"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	Voters   []string `json:"voters"`
}

type EventResults struct {
	EventID       string        `json:"id"`
	Title         string        `json:"title"`
	TotalVotes    int           `json:"totalVotes"`
	Options       []OptionTally `json:"options"`
	BestOptionIDs []string      `json:"bestOptionIds"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
