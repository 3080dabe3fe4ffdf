// Package friends serves the friend-list query: the caller's friend set
// resolved to public profile projections.
package friends

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/termin-app/notify-service/internal/models"
)

// ProfileStore is the slice of the storage collaborator the aggregator
// reads: the caller's friend-identifier set plus individual user snapshots.
// GetUser returns (nil, nil) for a user that no longer exists.
type ProfileStore interface {
	ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type Aggregator struct {
	store ProfileStore
	log   *logrus.Logger
}

func NewAggregator(store ProfileStore, log *logrus.Logger) *Aggregator {
	return &Aggregator{store: store, log: log}
}

// ListFriends resolves every friend of callerID to a profile projection.
// Profiles are fetched in parallel; a friend that no longer exists, or
// whose individual read fails, is dropped from the result rather than
// failing the call. Only a failure of the initial friend-set read is an
// error. Result order follows the friend-set read minus dropped entries,
// but callers should not rely on it.
func (a *Aggregator) ListFriends(ctx context.Context, callerID uuid.UUID) ([]models.ProfileProjection, error) {
	ids, err := a.store.ListFriendIDs(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.ProfileProjection{}, nil
	}

	resolved := make([]*models.User, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			u, err := a.store.GetUser(ctx, id)
			if err != nil {
				// One unreadable profile is excluded, not fatal.
				a.log.WithError(err).WithField("friend", id).Warn("failed to resolve friend profile")
				return
			}
			resolved[i] = u
		}(i, id)
	}
	wg.Wait()

	out := make([]models.ProfileProjection, 0, len(ids))
	for _, u := range resolved {
		if u == nil {
			continue
		}
		out = append(out, models.ProfileProjection{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			AvatarURL: u.AvatarURL,
			Email:     u.Email,
		})
	}
	return out, nil
}
