package subscribers

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/events"
	"github.com/ghuser/boxjoy/pkg/logger"
	domainevents "github.com/ghuser/boxjoy/services/collection/domain/events"
)

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newEvent() domainevents.CollectionChangedEvent {
	return domainevents.CollectionChangedEvent{
		EventID:    uuid.New(),
		Version:    domainevents.EventVersion,
		Kind:       domainevents.KindItemCreated,
		EntityID:   "i1",
		SeriesID:   "s1",
		OccurredAt: time.Now().UTC(),
		OwnedCount: 9,
		TotalValue: 9960,
		Level:      2,
	}
}

func toMessage(t *testing.T, v any) *message.Message {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func TestHandle_AuditWithoutCache(t *testing.T) {
	var buf syncBuffer
	h := NewCollectionChanged(nil, logger.NewWithWriter(&config.Config{LogLevel: "info"}, &buf))

	evt := newEvent()
	require.NoError(t, h.Handle(context.Background(), toMessage(t, evt)))
	assert.Contains(t, buf.String(), evt.EventID.String())
	assert.Contains(t, buf.String(), `"kind":"item.created"`)
}

func TestHandle_DropsUndecodablePayloads(t *testing.T) {
	var buf syncBuffer
	h := NewCollectionChanged(nil, logger.NewWithWriter(&config.Config{LogLevel: "info"}, &buf))

	msg := message.NewMessage(watermill.NewUUID(), []byte("{garbage"))
	require.NoError(t, h.Handle(context.Background(), msg), "malformed payloads are not retried")
	assert.Contains(t, buf.String(), "malformed")
}

func TestHandle_SkipsNewerSchema(t *testing.T) {
	var buf syncBuffer
	h := NewCollectionChanged(nil, logger.NewWithWriter(&config.Config{LogLevel: "info"}, &buf))

	evt := newEvent()
	evt.Version = domainevents.EventVersion + 1
	require.NoError(t, h.Handle(context.Background(), toMessage(t, evt)))
	assert.Contains(t, buf.String(), "newer schema")
}

func TestRegister_ReceivesPublishedEvents(t *testing.T) {
	var buf syncBuffer
	log := logger.NewWithWriter(&config.Config{LogLevel: "info"}, &buf)
	bus := events.NewChannelBus(log)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, Register(ctx, bus, nil, log))

	evt := newEvent()
	require.NoError(t, bus.PublishJSON(ctx, domainevents.TopicCollectionChanged, evt))

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), evt.EventID.String())
	}, 2*time.Second, 10*time.Millisecond)
}

// Integration test — skipped unless REDIS_URL is set.
func TestHandle_UpdatesStatsSnapshot(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := cache.NewRedisClient(ctx, &config.Config{RedisURL: redisURL})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })

	prefix := "boxjoy-test-" + uuid.NewString()
	stats := cache.NewStatsCache(rc, prefix)
	t.Cleanup(func() {
		keys, _ := rc.Client().Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			_ = rc.Client().Del(ctx, keys...).Err()
		}
	})

	var buf syncBuffer
	h := NewCollectionChanged(stats, logger.NewWithWriter(&config.Config{LogLevel: "info"}, &buf))

	evt := newEvent()
	msg := toMessage(t, evt)
	require.NoError(t, h.Handle(ctx, msg))
	require.NoError(t, h.Handle(ctx, msg), "redelivery is harmless")

	snap, err := stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, snap.OwnedCount)
	assert.Equal(t, 9960.0, snap.TotalValue)
	assert.Equal(t, evt.EventID.String(), snap.LastEventID)
	assert.Equal(t, 1, strings.Count(buf.String(), `"msg":"collection changed"`), "audit line written once")
}
