// Package kvstore is a minimal durable key-value store with atomic multi-key writes.
//
// Backends:
//   - SQLite (modernc.org/sqlite): local single-file store, the default
//   - PostgreSQL (pgx): kv_store table created by the collection migrations
//   - Redis (go-redis): MULTI/EXEC transaction per write
//   - Memory: process-local map for tests and throwaway runs
//
// Values are opaque bytes; callers own the encoding.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Entry is one key/value pair of a batch write.
type Entry struct {
	Key   string
	Value []byte
}

// Store is implemented by every backend.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// PutBatch writes all entries atomically: after it returns, either every
	// entry is visible or none is.
	PutBatch(ctx context.Context, entries []Entry) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases resources owned by the store. Shared clients passed in by
	// the caller are left open.
	Close() error
}
