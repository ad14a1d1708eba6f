package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/boxjoy/pkg/cache"
)

// RedisStore persists entries as plain string keys, optionally namespaced.
type RedisStore struct {
	client *cache.RedisClient
	prefix string
}

// NewRedisStore returns a store on the shared Redis client. Keys are stored as
// "{prefix}:{key}", or bare when prefix is empty.
func NewRedisStore(client *cache.RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Client().Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: get %s: %w", key, err)
	}
	return v, nil
}

// PutBatch implements Store using a MULTI/EXEC transaction.
func (s *RedisStore) PutBatch(ctx context.Context, entries []Entry) error {
	_, err := s.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			pipe.Set(ctx, s.key(e.Key), e.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kvstore: put batch: %w", err)
	}
	return nil
}

// Ping implements Store.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close implements Store. The client is owned by the caller.
func (s *RedisStore) Close() error { return nil }
