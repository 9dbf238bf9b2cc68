// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/handlers"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/service"
)

func NewRouter(svc *service.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(svc, cfg)
	voteHandler := handlers.NewVoteHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Events
	mux.HandleFunc("POST /api/events", middleware.WithLogging(eventHandler.CreateEvent))
	mux.HandleFunc("GET /api/events/{id}", middleware.WithLogging(eventHandler.GetEvent))

	// Votes and results
	mux.HandleFunc("POST /api/events/{id}/votes", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("GET /api/events/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-meet API v1"))
	})

	return mux
}
