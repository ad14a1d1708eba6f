package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/boxjoy/services/collection/domain/events"
)

func TestCollectionChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.CollectionChangedEvent{
		EventID:    uuid.New(),
		Version:    events.EventVersion,
		Kind:       events.KindSeriesDeleted,
		EntityID:   "s1",
		SeriesID:   "s1",
		Cascaded:   4,
		OccurredAt: time.Now().UTC(),
		OwnedCount: 6,
		TotalValue: 1234.5,
		Level:      2,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{
		"event_id", "version", "kind", "entity_id", "series_id", "cascaded",
		"occurred_at", "owned_count", "total_value", "level",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if raw["kind"] != "series.deleted" {
		t.Errorf("kind: got %v, want series.deleted", raw["kind"])
	}
}

func TestCollectionChangedEvent_ZeroStatsAreKept(t *testing.T) {
	data, err := json.Marshal(events.CollectionChangedEvent{Kind: events.KindReset})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"owned_count", "total_value", "level"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected %q to be present even when zero", field)
		}
	}
}

func TestTopicCollectionChanged_Value(t *testing.T) {
	if events.TopicCollectionChanged != "collection.changed" {
		t.Errorf("expected %q, got %q", "collection.changed", events.TopicCollectionChanged)
	}
}
