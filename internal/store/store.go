// Package store adapts the Postgres-backed document store this service
// reads from. Users and matches are stored as jsonb documents; friend-set
// membership is a plain relation. All access here is read-only: documents
// are created and deleted by other actors.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is an explicitly constructed handle to the storage collaborator.
// It is passed into the pipeline and aggregator at construction time so
// tests can substitute fakes; nothing holds it as a package global.
type Store struct {
	pool *pgxpool.Pool
}

// Connect builds a pgx pool for connString and verifies it with a ping.
func Connect(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}
