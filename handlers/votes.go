// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/service"
)

type VoteHandler struct {
	svc *service.Service
}

func NewVoteHandler(svc *service.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// SubmitVote handles POST /api/events/{id}/votes
// A vote with a name already present (any letter case) replaces that vote.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// An unknown event is reported before a bad body
		if _, lookupErr := h.svc.GetEvent(r.Context(), eventID); lookupErr != nil {
			writeServiceError(w, lookupErr, "Failed to load event.")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	err := h.svc.SubmitVote(r.Context(), eventID, asString(req.Name), asStrings(req.Selections))
	if err != nil {
		writeServiceError(w, err, "Failed to save vote.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{OK: true})
}
