// Package notify contains the event-to-notification core: the pure payload
// composer and the dispatch pipeline that turns one store-change event into
// at most one delivered push notification.
package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/termin-app/notify-service/internal/models"
	"github.com/termin-app/notify-service/internal/push"
)

// EntityStore is the read-only slice of the storage collaborator the
// pipeline needs. A nil snapshot with a nil error means the entity does not
// exist, which is a normal outcome, not a fault.
type EntityStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
}

// Dispatcher runs one pipeline pass per incoming event: resolve the
// involved entities, drop the event silently if anything required is
// missing, compose the localized payload, and hand it to the delivery
// collaborator. Passes share no state and never retry.
type Dispatcher struct {
	store  EntityStore
	sender push.Sender
	log    *logrus.Logger
}

func NewDispatcher(store EntityStore, sender push.Sender, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{store: store, sender: sender, log: log}
}

// Dispatch handles a single event to completion. The event is
// fire-and-forget: storage and delivery faults are logged and swallowed
// because there is no caller to report them to.
func (d *Dispatcher) Dispatch(ctx context.Context, ev models.Event) {
	switch e := ev.(type) {
	case models.FriendRequestCreated:
		d.dispatchFriendRequest(ctx, e)
	case models.FriendEdgeCreated:
		d.dispatchFriendEdge(ctx, e)
	case models.MatchConfirmationCreated:
		d.dispatchMatchFound(ctx, e)
	default:
		d.log.Warnf("dropping event of unknown type %T", ev)
	}
}

func (d *Dispatcher) dispatchFriendRequest(ctx context.Context, e models.FriendRequestCreated) {
	recipient, sender, err := d.resolvePair(ctx, e.RecipientID, e.SenderID)
	if err != nil {
		d.log.WithError(err).WithField("recipient", e.RecipientID).Error("friend request event: resolve failed")
		return
	}
	if recipient == nil || sender == nil {
		// Either side was deleted since the request fired; normal drop.
		return
	}

	payload := Compose(models.KindFriendRequest, recipient.Language, Params{
		ActorName: sender.DisplayName(),
		ActorID:   e.SenderID.String(),
	})
	d.deliver(ctx, recipient, payload)
}

func (d *Dispatcher) dispatchFriendEdge(ctx context.Context, e models.FriendEdgeCreated) {
	recipient, friend, err := d.resolvePair(ctx, e.OwnerID, e.FriendID)
	if err != nil {
		d.log.WithError(err).WithField("recipient", e.OwnerID).Error("friend edge event: resolve failed")
		return
	}
	if recipient == nil || friend == nil {
		return
	}

	payload := Compose(models.KindFriendAccepted, recipient.Language, Params{
		ActorName: friend.DisplayName(),
		ActorID:   e.FriendID.String(),
	})
	d.deliver(ctx, recipient, payload)
}

func (d *Dispatcher) dispatchMatchFound(ctx context.Context, e models.MatchConfirmationCreated) {
	// No second user to name here; the match read only confirms the match
	// still exists.
	var (
		wg       sync.WaitGroup
		match    *models.Match
		matchErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		match, matchErr = d.store.GetMatch(ctx, e.MatchID)
	}()
	recipient, err := d.store.GetUser(ctx, e.UserID)
	wg.Wait()

	if err == nil {
		err = matchErr
	}
	if err != nil {
		d.log.WithError(err).WithField("match", e.MatchID).Error("match confirmation event: resolve failed")
		return
	}
	if recipient == nil || match == nil {
		return
	}

	payload := Compose(models.KindMatchFound, recipient.Language, Params{
		MatchID: e.MatchID.String(),
	})
	d.deliver(ctx, recipient, payload)
}

// resolvePair fetches the recipient and the acting user concurrently. Both
// reads must settle before composition proceeds.
func (d *Dispatcher) resolvePair(ctx context.Context, recipientID, actorID uuid.UUID) (*models.User, *models.User, error) {
	var (
		wg       sync.WaitGroup
		actor    *models.User
		actorErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		actor, actorErr = d.store.GetUser(ctx, actorID)
	}()
	recipient, err := d.store.GetUser(ctx, recipientID)
	wg.Wait()

	if err != nil {
		return nil, nil, err
	}
	if actorErr != nil {
		return nil, nil, actorErr
	}
	return recipient, actor, nil
}

// deliver resolves the recipient's delivery address and hands the payload
// off. A user with no registered device is an expected state, not a fault;
// a delivery fault is logged and not retried.
func (d *Dispatcher) deliver(ctx context.Context, recipient *models.User, payload models.NotificationPayload) {
	if recipient.FCMToken == "" {
		d.log.WithField("user", recipient.ID).Debug("recipient has no delivery address, dropping notification")
		return
	}
	if err := d.sender.Send(ctx, recipient.FCMToken, payload); err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"user": recipient.ID,
			"type": payload.Data["type"],
		}).Error("notification delivery failed")
	}
}
