// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Meet API.

# Handler Types

Each handler is a struct with service and config dependencies:

  - EventHandler: create and fetch events
  - VoteHandler: submit or replace a vote
  - ResultsHandler: per-option tallies

	eventHandler := handlers.NewEventHandler(svc, cfg)

# Endpoints

	POST /api/events              → CreateEvent (201 {id, voteUrl, resultsUrl})
	GET  /api/events/{id}         → GetEvent (full event JSON)
	POST /api/events/{id}/votes   → SubmitVote (200 {ok: true})
	GET  /api/events/{id}/results → GetResults

# Errors

Service errors map to status codes in one place (writeServiceError):

  - service.ValidationError → 400 with its message
  - service.ErrEventNotFound → 404 "Event not found."
  - anything else (storage writes) → 500, logged

Malformed JSON bodies get 400 "Invalid JSON.". Request fields with the
wrong JSON type are coerced so they fail validation with the usual
message: a number title reads as missing, a non-array options value as
no options.
*/
package handlers
