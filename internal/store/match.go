package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/termin-app/notify-service/internal/models"
)

// GetMatch fetches a match by id, returning (nil, nil) when it no longer
// exists. The pipeline only needs existence, so no document fields are
// decoded.
func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var matchID uuid.UUID
	q := `SELECT id FROM matches WHERE id=$1`
	err := s.pool.QueryRow(ctx, q, id).Scan(&matchID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read match %s: %w", id, err)
	}
	return &models.Match{ID: matchID}, nil
}
