package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug, // must be debug to log headers
	}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, opts)))
	defer slog.SetDefault(prev)

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cases", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()
	if strings.Contains(logged, "secret-key-123") || strings.Contains(logged, "mytoken") {
		t.Errorf("secrets leaked into logs: %s", logged)
	}
	if !strings.Contains(logged, RedactedValue) {
		t.Errorf("expected redaction marker in logs")
	}
}

func TestLoggingMiddleware_SkipsHealthEndpoints(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	handler := loggingMiddleware(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if strings.Contains(buf.String(), "Request started") {
		t.Errorf("health probe should not be logged")
	}
}
