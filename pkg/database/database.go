// Package database owns the PostgreSQL connection pool shared by the postgres
// storage backend and the SQL event transport.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/boxjoy/pkg/logger"
)

// Database wraps a pgx pool and a database/sql view of the same pool for
// libraries that only speak database/sql (Watermill, goose).
type Database struct {
	pool *pgxpool.Pool
	sql  *sql.DB
	log  logger.Logger
}

// NewPool connects to url, applies pool settings and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("database: parse url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: new pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Database{pool: pool, sql: stdlib.OpenDBFromPool(pool), log: log}, nil
}

// Pool returns the underlying pgx pool.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// SQL returns a *sql.DB backed by the same pool.
func (d *Database) SQL() *sql.DB {
	return d.sql
}

// WithTx runs fn inside a transaction, committing on nil and rolling back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	if err := pgx.BeginFunc(ctx, d.pool, fn); err != nil {
		return fmt.Errorf("database: tx: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close closes the sql view and the pool.
func (d *Database) Close() {
	if err := d.sql.Close(); err != nil && d.log != nil {
		d.log.Warn("database: close sql view", "error", err)
	}
	d.pool.Close()
}
