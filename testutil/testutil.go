// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/service"
	"github.com/danielhkuo/quickly-meet/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      3000,
		StoreType: cliparse.StoreFile,
		DataFile:  "events.json",
		LogLevel:  "error",
	}
}

// SetupTestService returns a service backed by a fresh in-memory store
func SetupTestService(t *testing.T) (*service.Service, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	return service.New(st), st
}

// CreateTestEvent creates an event with the given option labels and
// returns its id. Option ids are opt_0, opt_1, ... in label order.
func CreateTestEvent(t *testing.T, svc *service.Service, title string, labels ...string) string {
	t.Helper()

	event, err := svc.CreateEvent(context.Background(), title, labels)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event.ID
}

// SubmitTestVote records a vote directly through the service
func SubmitTestVote(t *testing.T, svc *service.Service, eventID, name string, selections ...string) {
	t.Helper()

	if err := svc.SubmitVote(context.Background(), eventID, name, selections); err != nil {
		t.Fatalf("Failed to submit test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request. String bodies are sent as-is.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status and the {"error": ...} message
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp struct {
		Error string `json:"error"`
	}
	AssertJSON(t, w, &resp)
	if resp.Error != message {
		t.Errorf("Expected error '%s', got '%s'", message, resp.Error)
	}
}
