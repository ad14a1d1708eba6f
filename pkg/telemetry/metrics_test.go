package telemetry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollectionMetrics_ExportedOnPrometheus(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	m, err := NewCollectionMetrics(func() CollectionSnapshot {
		return CollectionSnapshot{OwnedCount: 8, TotalValue: 9690, Level: 2}
	})
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}
	ctx := context.Background()
	m.RecordMutation(ctx, "item.created", nil)
	m.RecordMutation(ctx, "item.created", errors.New("disk full"))
	m.RecordClassification(ctx, 150*time.Millisecond, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	body, _ := io.ReadAll(rr.Body)
	out := string(body)

	for _, want := range []string{
		"boxjoy_collection_mutations",
		"boxjoy_collection_owned_items",
		"boxjoy_collection_total_value",
		"boxjoy_collection_level",
		"boxjoy_classifier_requests",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in /metrics output", want)
		}
	}
}

func TestCollectionMetrics_NilIsNoOp(t *testing.T) {
	var m *CollectionMetrics
	m.RecordMutation(context.Background(), "item.deleted", nil)
	m.RecordClassification(context.Background(), time.Second, errors.New("x"))
}
