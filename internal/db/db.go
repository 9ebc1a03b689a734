// Package db provides PostgreSQL storage for scraped job postings and
// their match results.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// opTimeout bounds every store round-trip. A timeout surfaces as a
// transient failure the caller may retry; the store itself never retries.
const opTimeout = 5 * time.Second

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string, log *zap.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &DB{pool: pool, log: log}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

func (db *DB) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
