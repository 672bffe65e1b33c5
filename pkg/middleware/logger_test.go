package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger(t *testing.T) {
	// Capture log output in a buffer
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"rows":4}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", nil)
	rec := httptest.NewRecorder()
	Logger(logger)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v", err)
	}
	if entry["method"] != "POST" {
		t.Errorf("expected method POST, got %v", entry["method"])
	}
	if entry["path"] != "/api/datasets" {
		t.Errorf("expected path /api/datasets, got %v", entry["path"])
	}
	if entry["status"] != float64(201) {
		t.Errorf("expected status 201, got %v", entry["status"])
	}
	if entry["message"] != "request completed" {
		t.Errorf("expected message 'request completed', got %v", entry["message"])
	}
	if _, ok := entry["duration"]; !ok {
		t.Error("expected a duration field in the log entry")
	}
}

func TestLoggerStatusCapture(t *testing.T) {
	tests := []struct {
		name   string
		status int // 0 means the handler never calls WriteHeader
		want   float64
	}{
		{name: "implicit 200", status: 0, want: 200},
		{name: "bad filter params", status: http.StatusBadRequest, want: 400},
		{name: "no dataset loaded", status: http.StatusNotFound, want: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				w.Write([]byte("{}"))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
			rec := httptest.NewRecorder()
			Logger(zerolog.New(&buf))(handler).ServeHTTP(rec, req)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log entry: %v", err)
			}
			if entry["status"] != tt.want {
				t.Errorf("expected logged status %v, got %v", tt.want, entry["status"])
			}
		})
	}
}
