package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/ghuser/boxjoy/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "boxjoy-test",
		ServiceVersion: "test",
		Environment:    "testing",
		OtelEndpoint:   "", // disabled
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	fields := otel.GetTextMapPropagator().Fields()
	found := false
	for _, f := range fields {
		if f == "traceparent" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected traceparent in propagator fields, got %v", fields)
	}
}

func TestCaptureError_NoSentryIsNoOp(t *testing.T) {
	CaptureError(context.Background(), errors.New("boom"))
	CaptureError(context.Background(), nil)
}

func TestSampler(t *testing.T) {
	cases := map[float64]string{
		0:    "AlwaysOnSampler",
		1:    "AlwaysOnSampler",
		2:    "AlwaysOnSampler",
		0.25: "TraceIDRatioBased{0.25}",
	}
	for ratio, want := range cases {
		if got := sampler(ratio).Description(); !strings.Contains(got, want) {
			t.Errorf("sampler(%v) = %q, want it to contain %q", ratio, got, want)
		}
	}
}
