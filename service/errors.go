// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import "errors"

// User-facing validation messages
const (
	MsgTitleRequired   = "Event title is required."
	MsgTooFewOptions   = "Please provide at least 2 time options."
	MsgTooManyOptions  = "You can have at most 30 time options."
	MsgEmptyOption     = "All time options must have a value."
	MsgNameRequired    = "Please enter your name."
	MsgNameTooLong     = "Name must be 50 characters or fewer."
	MsgNoSelections    = "Please select at least one time option."
	MsgInvalidSelected = "Invalid option selected."
	MsgEventNotFound   = "Event not found."
)

var ErrEventNotFound = errors.New("event not found")

// ValidationError is a rejected input; Message is safe to show to users
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
