// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Meet API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

	GET  /health                  - Liveness
	GET  /                        - Banner
	POST /api/events              - Create event
	GET  /api/events/{id}         - Event with options and votes
	POST /api/events/{id}/votes   - Submit or replace a vote
	GET  /api/events/{id}/results - Tally per option

API routes are wrapped with middleware.WithLogging. CORS is applied to the
whole mux in main.
*/
package router
