package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/logger"
	domainevents "github.com/ghuser/boxjoy/services/collection/domain/events"
)

// Subscriber is the part of *events.EventBus the subscribers need.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// CollectionChanged handles collection.changed events: it refreshes the Redis
// stats snapshot (when a cache is configured) and writes an audit log line on
// the first delivery of each event.
// Handlers must be idempotent; EventBus retries up to 3x on failure.
type CollectionChanged struct {
	stats *cache.StatsCache // nil disables the snapshot
	log   logger.Logger
}

// NewCollectionChanged returns the collection.changed handler. stats may be nil.
func NewCollectionChanged(stats *cache.StatsCache, log logger.Logger) *CollectionChanged {
	return &CollectionChanged{stats: stats, log: log}
}

// Handle processes one message.
func (h *CollectionChanged) Handle(ctx context.Context, msg *message.Message) error {
	var evt domainevents.CollectionChangedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		// A payload that does not decode will never decode; drop it.
		h.log.ErrorContext(ctx, "discarding malformed collection.changed payload",
			"message_uuid", msg.UUID, "error", err)
		return nil
	}
	if evt.Version > domainevents.EventVersion {
		h.log.WarnContext(ctx, "collection.changed from a newer schema, skipping",
			"event_id", evt.EventID, "version", evt.Version)
		return nil
	}

	if h.stats == nil {
		h.audit(ctx, evt)
		return nil
	}

	written, err := h.stats.Set(ctx, &cache.StatsSnapshot{
		OwnedCount:  evt.OwnedCount,
		TotalValue:  evt.TotalValue,
		Level:       evt.Level,
		LastEventID: evt.EventID.String(),
		UpdatedAt:   evt.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("update stats snapshot: %w", err)
	}
	if !written {
		h.log.DebugContext(ctx, "stats snapshot already newer", "event_id", evt.EventID)
	}

	first, err := h.stats.MarkProcessed(ctx, evt.EventID.String())
	if err != nil {
		h.log.WarnContext(ctx, "dedup check failed", "event_id", evt.EventID, "error", err)
		first = true
	}
	if first {
		h.audit(ctx, evt)
	} else {
		h.log.DebugContext(ctx, "duplicate collection.changed delivery", "event_id", evt.EventID)
	}
	return nil
}

func (h *CollectionChanged) audit(ctx context.Context, evt domainevents.CollectionChangedEvent) {
	h.log.InfoContext(ctx, "collection changed",
		"event_id", evt.EventID,
		"kind", evt.Kind,
		"entity_id", evt.EntityID,
		"series_id", evt.SeriesID,
		"cascaded", evt.Cascaded,
		"owned_count", evt.OwnedCount,
		"total_value", evt.TotalValue,
		"level", evt.Level,
	)
}

// Register wires all collection event handlers onto bus.
// Subscriber errors are drained in the background so the channel never blocks.
func Register(ctx context.Context, bus Subscriber, stats *cache.StatsCache, log logger.Logger) error {
	h := NewCollectionChanged(stats, log)
	errCh, err := bus.Subscribe(ctx, domainevents.TopicCollectionChanged, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "subscriber error",
				"topic", domainevents.TopicCollectionChanged,
				"error", err,
			)
		}
	}()

	log.Info("event subscribers registered",
		"topics", []string{domainevents.TopicCollectionChanged},
		"stats_snapshot", stats != nil,
	)
	return nil
}
