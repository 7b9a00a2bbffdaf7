// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/ai-partner/cliparse"
	"github.com/danielhkuo/ai-partner/db"
	"github.com/danielhkuo/ai-partner/kvstore"
)

// SetupTestStore opens a fresh sqlite-backed store in a temp dir
func SetupTestStore(t *testing.T) kvstore.Store {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseType = cliparse.DatabaseSQLite
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "test.db")

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return kvstore.NewSQL(conn)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseType:   cliparse.DatabaseMemory,
		PollMode:       cliparse.PollModeLedger,
		Env:            "test",
		AllowedOrigins: []string{"*"},
	}
}

// NewDeviceID returns a random device UUID
func NewDeviceID() string {
	return uuid.NewString()
}

// DeviceHeaders returns request headers for the given device
func DeviceHeaders(deviceID string) map[string]string {
	return map[string]string{"X-Device-UUID": deviceID}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
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
