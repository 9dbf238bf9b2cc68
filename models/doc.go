// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateEventRequest: title, options
  - SubmitVoteRequest: name, selections

Request fields are typed as any so handlers can turn a wrong JSON type
into the same user-facing message as a missing value.

# Response Types

  - CreateEventResponse: id, voteUrl, resultsUrl
  - SubmitVoteResponse: ok
  - EventResults: per-option tally for the results page
  - ErrorResponse: error

# Domain Types

  - Event: title, creation time, ordered options, votes
  - Option: id (opt_0, opt_1, ...) and label
  - Vote: respondent name, time, selected option ids
  - EventSet: every stored event keyed by id

The JSON shape of EventSet is also the persisted document format.

# Constants

	MinOptions    = 2
	MaxOptions    = 30
	MaxNameLength = 50
*/
package models
