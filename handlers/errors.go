// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/service"
)

const msgInvalidJSON = "Invalid JSON."

// writeServiceError maps service errors to status codes. Anything that is
// not a validation or lookup failure is logged and reported as fallback.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrEventNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, service.MsgEventNotFound)
	default:
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}

// asString returns v if it is a JSON string, else ""
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStrings converts a JSON array to strings. Non-array values give nil;
// non-string elements become "" so they fail validation like blanks do.
func asStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = asString(item)
	}
	return out
}
