package cache

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/boxjoy/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_EmptyURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), newTestConfig(""))
	if err == nil {
		t.Fatal("expected error for empty URL, got nil")
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(context.Background(), newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping_Success", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("StatsCache_RoundTrip", func(t *testing.T) {
		sc := NewStatsCache(rc, "boxjoy-test-"+uuid.NewString())
		if _, err := sc.Get(ctx); err != ErrSnapshotNotFound {
			t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
		}

		now := time.Now().UTC()
		want := &StatsSnapshot{OwnedCount: 7, TotalValue: 5410.5, Level: 2, LastEventID: "e1", UpdatedAt: now}
		if written, err := sc.Set(ctx, want); err != nil || !written {
			t.Fatalf("Set failed: written=%v err=%v", written, err)
		}

		got, err := sc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.OwnedCount != 7 || got.TotalValue != 5410.5 || got.Level != 2 || got.LastEventID != "e1" {
			t.Fatalf("unexpected snapshot %+v", got)
		}

		stale := &StatsSnapshot{OwnedCount: 1, Level: 1, LastEventID: "e0", UpdatedAt: now.Add(-time.Minute)}
		written, err := sc.Set(ctx, stale)
		if err != nil {
			t.Fatalf("Set stale failed: %v", err)
		}
		if written {
			t.Fatal("expected stale snapshot to be skipped")
		}
		got, _ = sc.Get(ctx)
		if got.LastEventID != "e1" {
			t.Fatalf("stale snapshot overwrote newer one: %+v", got)
		}
	})

	t.Run("StatsCache_ConcurrentWritersKeepNewest", func(t *testing.T) {
		sc := NewStatsCache(rc, "boxjoy-test-"+uuid.NewString())
		base := time.Now().UTC()

		const writers = 50
		var wg sync.WaitGroup
		for i := writers - 1; i >= 0; i-- {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				snap := &StatsSnapshot{
					OwnedCount:  i,
					Level:       i/5 + 1,
					LastEventID: fmt.Sprintf("e%d", i),
					UpdatedAt:   base.Add(time.Duration(i) * time.Millisecond),
				}
				if _, err := sc.Set(ctx, snap); err != nil {
					t.Errorf("Set %d failed: %v", i, err)
				}
			}(i)
		}
		wg.Wait()

		got, err := sc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.OwnedCount != writers-1 || got.LastEventID != fmt.Sprintf("e%d", writers-1) {
			t.Fatalf("expected the newest snapshot to win, got %+v", got)
		}
	})

	t.Run("StatsCache_MarkProcessed", func(t *testing.T) {
		sc := NewStatsCache(rc, "boxjoy-test-"+uuid.NewString())
		id := uuid.NewString()

		first, err := sc.MarkProcessed(ctx, id)
		if err != nil || !first {
			t.Fatalf("expected first delivery, got %v %v", first, err)
		}
		again, err := sc.MarkProcessed(ctx, id)
		if err != nil || again {
			t.Fatalf("expected duplicate delivery, got %v %v", again, err)
		}
	})
}
