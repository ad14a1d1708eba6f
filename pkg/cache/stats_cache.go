package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// processedEventTTL bounds how long an event ID is remembered for deduplication.
	processedEventTTL = 24 * time.Hour

	statsKeySuffix     = "stats"
	processedKeySuffix = "events:processed"
)

// ErrSnapshotNotFound is returned by StatsCache.Get before the first snapshot is written.
var ErrSnapshotNotFound = errors.New("stats snapshot not found")

// StatsSnapshot is the denormalized stats read model stored in Redis.
// It is written by the collection.changed subscriber and read by dashboards
// that should not load the whole collection.
type StatsSnapshot struct {
	OwnedCount  int       `json:"owned_count"`
	TotalValue  float64   `json:"total_value"`
	Level       int       `json:"level"`
	LastEventID string    `json:"last_event_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatsCache reads and writes the stats snapshot hash.
// Key format: "{prefix}:stats"
type StatsCache struct {
	client *RedisClient
	prefix string
}

// NewStatsCache creates a StatsCache whose keys start with prefix (usually the service name).
func NewStatsCache(r *RedisClient, prefix string) *StatsCache {
	return &StatsCache{client: r, prefix: prefix}
}

// Get returns the latest snapshot, or ErrSnapshotNotFound if none has been written.
func (c *StatsCache) Get(ctx context.Context) (*StatsSnapshot, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(statsKeySuffix)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get stats: %w", err)
	}
	if len(vals) == 0 {
		return nil, ErrSnapshotNotFound
	}

	owned, err := strconv.Atoi(vals["owned_count"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owned_count: %w", err)
	}
	value, err := strconv.ParseFloat(vals["total_value"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse total_value: %w", err)
	}
	level, err := strconv.Atoi(vals["level"])
	if err != nil {
		return nil, fmt.Errorf("cache parse level: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &StatsSnapshot{
		OwnedCount:  owned,
		TotalValue:  value,
		Level:       level,
		LastEventID: vals["last_event_id"],
		UpdatedAt:   updatedAt,
	}, nil
}

// setStatsScript writes the snapshot hash unless the stored one is newer.
// ARGV[1] is the snapshot time in Unix microseconds, which stays exact as a
// Lua number. Returns 1 when written, 0 when skipped.
var setStatsScript = redis.NewScript(`
local current = redis.call("HGET", KEYS[1], "updated_at_us")
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call("HSET", KEYS[1],
	"updated_at_us", ARGV[1],
	"owned_count", ARGV[2],
	"total_value", ARGV[3],
	"level", ARGV[4],
	"last_event_id", ARGV[5],
	"updated_at", ARGV[6])
return 1
`)

// Set overwrites the snapshot. Snapshots older than the stored one are ignored so
// out-of-order redelivery cannot roll the read model back. The check and the
// write run as one script, so concurrent workers cannot interleave.
// written reports whether s was stored.
func (c *StatsCache) Set(ctx context.Context, s *StatsSnapshot) (written bool, err error) {
	at := s.UpdatedAt.UTC()
	n, err := setStatsScript.Run(ctx, c.client.Client(), []string{c.key(statsKeySuffix)},
		at.UnixMicro(),
		s.OwnedCount,
		strconv.FormatFloat(s.TotalValue, 'f', -1, 64),
		s.Level,
		s.LastEventID,
		at.Format(time.RFC3339Nano),
	).Int()
	if err != nil {
		return false, fmt.Errorf("cache set stats: %w", err)
	}
	return n == 1, nil
}

// MarkProcessed records eventID and reports whether this is its first delivery.
// Subscribers use it to stay idempotent under at-least-once delivery.
func (c *StatsCache) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	first, err := c.client.Client().SetNX(ctx, c.key(processedKeySuffix)+":"+eventID, 1, processedEventTTL).Result()
	if err != nil {
		return false, fmt.Errorf("cache mark processed: %w", err)
	}
	return first, nil
}

// key builds "{prefix}:{suffix}".
func (c *StatsCache) key(suffix string) string {
	return fmt.Sprintf("%s:%s", c.prefix, suffix)
}
