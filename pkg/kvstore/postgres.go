package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/boxjoy/pkg/database"
)

// PostgresStore persists entries in the kv_store table. The table is created by
// the collection migrations; run them before opening the store.
type PostgresStore struct {
	db *database.Database
}

// NewPostgresStore returns a store on the shared connection pool.
func NewPostgresStore(db *database.Database) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.Pool().QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: get %s: %w", key, err)
	}
	return v, nil
}

// PutBatch implements Store.
func (s *PostgresStore) PutBatch(ctx context.Context, entries []Entry) error {
	return s.db.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(
				`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
                 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
				e.Key, e.Value,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("kvstore: put batch: %w", err)
		}
		return nil
	})
}

// Ping implements Store.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close implements Store. The pool is owned by the caller.
func (s *PostgresStore) Close() error { return nil }
