package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicCollectionChanged is the Watermill topic published after every committed mutation.
const TopicCollectionChanged = "collection.changed"

// EventVersion is the current schema version of CollectionChangedEvent.
const EventVersion = 1

// ChangeKind names the mutation that produced a CollectionChangedEvent.
type ChangeKind string

const (
	KindSeriesCreated ChangeKind = "series.created"
	KindSeriesUpdated ChangeKind = "series.updated"
	KindSeriesDeleted ChangeKind = "series.deleted"
	KindItemCreated   ChangeKind = "item.created"
	KindItemUpdated   ChangeKind = "item.updated"
	KindItemDeleted   ChangeKind = "item.deleted"
	KindReset         ChangeKind = "collection.reset"
)

// CollectionChangedEvent is published after a mutation has been persisted.
// It carries the post-mutation stats so read models need not reload the collection.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicCollectionChanged).
type CollectionChangedEvent struct {
	EventID    uuid.UUID  `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int        `json:"version"`  // Schema version; increment on breaking changes
	Kind       ChangeKind `json:"kind"`
	EntityID   string     `json:"entity_id,omitempty"`
	SeriesID   string     `json:"series_id,omitempty"`
	Cascaded   int        `json:"cascaded,omitempty"` // items removed along with a series
	OccurredAt time.Time  `json:"occurred_at"`
	OwnedCount int        `json:"owned_count"`
	TotalValue float64    `json:"total_value"`
	Level      int        `json:"level"`
}
