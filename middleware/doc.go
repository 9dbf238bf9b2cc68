// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every log line carries a request_id taken from X-Request-ID
or generated with uuid, and the id is echoed in the response header.

# CORS Middleware

Enable cross-origin requests for the browser pages:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Preflight OPTIONS requests are answered with 204 and never reach the mux.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter your name.")

ErrorResponse bodies are always {"error": "..."}.

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON.")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For (first hop) and X-Real-IP; used in request logs.
*/
package middleware
