package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/termin-app/notify-service/internal/models"
)

// GetUser fetches one user snapshot by id. A missing row returns (nil, nil):
// events routinely reference users deleted between the triggering write and
// this read, and callers treat that as a normal drop, not a fault.
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var (
		email   *string
		profile map[string]any
	)
	q := `SELECT email, profile FROM users WHERE id=$1`
	err := s.pool.QueryRow(ctx, q, id).Scan(&email, &profile)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user %s: %w", id, err)
	}

	u := decodeUserProfile(id, profile)
	// The email column is authoritative over whatever the document carries.
	if email != nil && *email != "" {
		u.Email = *email
	}
	return u, nil
}

// ListFriendIDs returns the caller's friend-identifier set. An empty set is
// a nil slice and a nil error.
func (s *Store) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := `SELECT friend_id FROM friends WHERE user_id=$1`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends for %s: %w", userID, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Credentials returns the user id and encoded password hash for email, for
// the login endpoint. An unknown email returns (uuid.Nil, "", nil).
func (s *Store) Credentials(ctx context.Context, email string) (uuid.UUID, string, error) {
	var (
		id   uuid.UUID
		hash string
	)
	q := `SELECT id, password FROM users WHERE email=$1`
	err := s.pool.QueryRow(ctx, q, email).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, "", nil
	}
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to read credentials: %w", err)
	}
	return id, hash, nil
}
