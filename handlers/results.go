// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/service"
)

type ResultsHandler struct {
	svc *service.Service
}

func NewResultsHandler(svc *service.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetResults handles GET /api/events/{id}/results
// Returns per-option counts and voter names; results are always public.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Results(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Failed to load results.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
