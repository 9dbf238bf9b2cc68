// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/service"
)

type EventHandler struct {
	svc *service.Service
	cfg cliparse.Config
}

func NewEventHandler(svc *service.Service, cfg cliparse.Config) *EventHandler {
	return &EventHandler{svc: svc, cfg: cfg}
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), asString(req.Title), asStrings(req.Options))
	if err != nil {
		writeServiceError(w, err, "Failed to save event.")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{
		ID:         event.ID,
		VoteURL:    h.pageURL("/vote.html", event.ID),
		ResultsURL: h.pageURL("/results.html", event.ID),
	})
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Failed to load event.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

func (h *EventHandler) pageURL(page, id string) string {
	return h.cfg.BaseURL + page + "?id=" + url.QueryEscape(id)
}
