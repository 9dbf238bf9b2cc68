// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/service"
	"github.com/danielhkuo/quickly-meet/store"
	"github.com/danielhkuo/quickly-meet/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	mux := NewRouter(svc, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	mux := NewRouter(svc, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if expected := "quickly-meet API v1"; w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPath(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	mux := NewRouter(svc, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/nowhere", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	mux := NewRouter(svc, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/api/events/abc"},
		{"PUT", "/api/events/abc/votes"},
		{"POST", "/api/events/abc/results"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	svc, _ := testutil.SetupTestService(t)
	mux := NewRouter(svc, testutil.GetTestConfig())
	eventID := testutil.CreateTestEvent(t, svc, "Sync", "a", "b")

	for _, path := range []string{"/api/events/" + eventID, "/api/events/" + eventID + "/results"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("Expected request id header on %s", path)
		}
	}
}

// TestFullSchedulingWorkflow runs the whole flow against a file store:
// 1. Create event
// 2. Fetch it
// 3. Two people vote, one of them twice under different casing
// 4. Results reflect the replaced vote
// 5. A fresh service over the same file sees the same state
func TestFullSchedulingWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	cfg := testutil.GetTestConfig()
	cfg.DataFile = path

	svc := service.New(store.NewFileStore(path))
	mux := NewRouter(svc, cfg)

	// Step 1: Create
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/events", map[string]any{
		"title":   "Team sync",
		"options": []string{"2026-01-01T10:00", "2026-01-01T14:00"},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateEventResponse
	testutil.AssertJSON(t, w, &created)
	if created.ID == "" {
		t.Fatal("Step 1 - missing id")
	}

	// Step 2: Fetch
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/events/"+created.ID, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var event models.Event
	testutil.AssertJSON(t, w, &event)
	if event.Title != "Team sync" || len(event.Options) != 2 {
		t.Fatalf("Step 2 - unexpected event %+v", event)
	}

	// Step 3: Vote
	votes := []map[string]any{
		{"name": "Bob", "selections": []string{"opt_0"}},
		{"name": "Alice", "selections": []string{"opt_0", "opt_1"}},
		{"name": "bob", "selections": []string{"opt_1"}},
	}
	for i, vote := range votes {
		w = httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/events/"+created.ID+"/votes", vote, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - vote %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}

	// Step 4: Results
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/events/"+created.ID+"/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.EventResults
	testutil.AssertJSON(t, w, &results)
	if results.TotalVotes != 2 {
		t.Errorf("Step 4 - expected 2 votes, got %d", results.TotalVotes)
	}
	if results.Options[0].Count != 1 || results.Options[1].Count != 2 {
		t.Errorf("Step 4 - unexpected tallies %+v", results.Options)
	}

	// Step 5: Reload from disk
	reloaded := service.New(store.NewFileStore(path))
	again, err := reloaded.GetEvent(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("Step 5 - reload failed: %v", err)
	}
	if len(again.Votes) != 2 || again.Votes[0].Name != "bob" {
		t.Errorf("Step 5 - unexpected votes %+v", again.Votes)
	}
}
