package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ghuser/boxjoy/pkg/config"
)

func newTestLogger(buf *bytes.Buffer) Logger {
	return NewWithWriter(&config.Config{LogLevel: "debug", ServiceName: "boxjoy-test"}, buf)
}

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp
}

func parseLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("failed to parse log line %q: %v", last, err)
	}
	return m
}

// TestNewWithWriter_ServiceAttribute verifies every record carries the service name.
func TestNewWithWriter_ServiceAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.Info("started")

	entry := parseLastLine(t, &buf)
	if entry["service"] != "boxjoy-test" {
		t.Errorf("expected service=boxjoy-test, got %v", entry["service"])
	}
}

// TestNewWithWriter_TextFormat verifies LOG_FORMAT=text switches to logfmt-style output.
func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{LogLevel: "info", LogFormat: "text"}, &buf)

	log.Info("collection loaded", "series", 5)

	out := buf.String()
	if !strings.Contains(out, "msg=\"collection loaded\"") || !strings.Contains(out, "series=5") {
		t.Errorf("unexpected text output %q", out)
	}
}

// TestNewWithWriter_LevelFiltering verifies records below the configured level are dropped.
func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{LogLevel: "warn"}, &buf)

	log.Info("hidden")
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatal("expected warn record")
	}
}

// TestErrorContext_WithSpan verifies trace context is injected and error values are kept.
func TestErrorContext_WithSpan(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	ctx, span := otel.Tracer("test").Start(context.Background(), "save-span")
	defer span.End()

	log.ErrorContext(ctx, "persist failed", "error", errors.New("disk full"), "item_id", "i-1")

	entry := parseLastLine(t, &buf)
	if _, ok := entry["trace_id"]; !ok {
		t.Error("expected trace_id")
	}
	if _, ok := entry["span_id"]; !ok {
		t.Error("expected span_id")
	}
	if entry["item_id"] != "i-1" {
		t.Errorf("expected item_id=i-1, got %v", entry["item_id"])
	}
}

// TestInfoContext_NoSpan verifies no trace fields appear without an active span.
func TestInfoContext_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.InfoContext(context.Background(), "no span")

	entry := parseLastLine(t, &buf)
	if _, ok := entry["trace_id"]; ok {
		t.Error("trace_id should not be present without an active span")
	}
}

// TestMiddleware_RequestFields verifies request logs carry request_id and the chi route pattern.
func TestMiddleware_RequestFields(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(log))
	r.Get("/api/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/items/abc", http.NoBody))

	entry := parseLastLine(t, &buf)
	if _, ok := entry["request_id"]; !ok {
		t.Error("expected request_id in request log")
	}
	if entry["route"] != "/api/items/{id}" {
		t.Errorf("expected route pattern, got %v", entry["route"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("expected INFO for 200, got %v", entry["level"])
	}
}

// TestMiddleware_LevelByStatus verifies 4xx logs at WARN and 5xx at ERROR.
func TestMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusNotFound, "WARN"},
		{http.StatusUnprocessableEntity, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		h := Middleware(newTestLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if got := parseLastLine(t, &buf)["level"]; got != tt.want {
			t.Errorf("status %d: expected %s, got %v", tt.status, tt.want, got)
		}
	}
}

// TestRecovery_Returns500 verifies panics are logged and converted into a 500.
func TestRecovery_Returns500(t *testing.T) {
	var buf bytes.Buffer
	h := Recovery(newTestLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if entry := parseLastLine(t, &buf); entry["msg"] != "panic recovered" {
		t.Errorf("expected panic log, got %v", entry["msg"])
	}
}
