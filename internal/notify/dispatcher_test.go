package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termin-app/notify-service/internal/models"
)

// fakeStore serves snapshots from memory. Absent entities resolve to
// (nil, nil), mirroring the real store's contract.
type fakeStore struct {
	users   map[uuid.UUID]*models.User
	matches map[uuid.UUID]*models.Match
	down    bool
}

func (f *fakeStore) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	if f.down {
		return nil, errors.New("storage unavailable")
	}
	return f.users[id], nil
}

func (f *fakeStore) GetMatch(_ context.Context, id uuid.UUID) (*models.Match, error) {
	if f.down {
		return nil, errors.New("storage unavailable")
	}
	return f.matches[id], nil
}

type sentCall struct {
	address string
	payload models.NotificationPayload
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentCall
	err  error
}

func (f *fakeSender) Send(_ context.Context, address string, n models.NotificationPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentCall{address: address, payload: n})
	return f.err
}

func newTestDispatcher(store *fakeStore, sender *fakeSender) *Dispatcher {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewDispatcher(store, sender, logger)
}

func TestDispatchFriendRequestCroatianScenario(t *testing.T) {
	u1 := uuid.New()
	u2 := uuid.New()
	store := &fakeStore{users: map[uuid.UUID]*models.User{
		u1: {ID: u1, FirstName: "Marko", LastName: "Kovac", Language: "hr", FCMToken: "tok-1"},
		u2: {ID: u2, FirstName: "Ana", LastName: "Babic"},
	}}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendRequestCreated{
		RecipientID: u1,
		RequestID:   "req-1",
		SenderID:    u2,
	})

	require.Len(t, sender.sent, 1)
	call := sender.sent[0]
	assert.Equal(t, "tok-1", call.address)
	assert.Equal(t, "Zahtjev za prijateljstvo", call.payload.Title)
	assert.Equal(t, "Ana Babic ti je poslao zahtjev za prijateljstvo.", call.payload.Body)
	assert.Equal(t, map[string]string{
		"type":     "friend_request",
		"senderId": u2.String(),
	}, call.payload.Data)
}

func TestDispatchSkipsMissingRecipient(t *testing.T) {
	u2 := uuid.New()
	store := &fakeStore{users: map[uuid.UUID]*models.User{
		u2: {ID: u2, FirstName: "Ana", LastName: "Babic"},
	}}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendRequestCreated{
		RecipientID: uuid.New(), // never created
		SenderID:    u2,
	})

	assert.Empty(t, sender.sent, "missing recipient must not produce a delivery")
}

func TestDispatchSkipsMissingSender(t *testing.T) {
	u1 := uuid.New()
	store := &fakeStore{users: map[uuid.UUID]*models.User{
		u1: {ID: u1, FirstName: "Marko", LastName: "Kovac", FCMToken: "tok-1"},
	}}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendRequestCreated{
		RecipientID: u1,
		SenderID:    uuid.New(),
	})

	assert.Empty(t, sender.sent)
}

func TestDispatchSkipsRecipientWithoutDeliveryAddress(t *testing.T) {
	u1 := uuid.New()
	u2 := uuid.New()
	store := &fakeStore{users: map[uuid.UUID]*models.User{
		u1: {ID: u1, FirstName: "Marko", LastName: "Kovac", Language: "hr"}, // no token
		u2: {ID: u2, FirstName: "Ana", LastName: "Babic"},
	}}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendRequestCreated{
		RecipientID: u1,
		SenderID:    u2,
	})

	assert.Empty(t, sender.sent, "recipient without a device must not produce a delivery")
}

func TestDispatchFriendEdge(t *testing.T) {
	owner := uuid.New()
	friend := uuid.New()
	store := &fakeStore{users: map[uuid.UUID]*models.User{
		owner:  {ID: owner, FirstName: "Marko", LastName: "Kovac", FCMToken: "tok-owner"},
		friend: {ID: friend, FirstName: "Ivan", LastName: "Horvat"},
	}}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendEdgeCreated{OwnerID: owner, FriendID: friend})

	require.Len(t, sender.sent, 1)
	call := sender.sent[0]
	assert.Equal(t, "tok-owner", call.address)
	assert.Equal(t, "Friend request accepted", call.payload.Title)
	assert.Equal(t, "Ivan Horvat accepted your friend request.", call.payload.Body)
	assert.Equal(t, map[string]string{
		"type":       "friend_accepted",
		"accepterId": friend.String(),
	}, call.payload.Data)
}

func TestDispatchMatchFound(t *testing.T) {
	user := uuid.New()
	match := uuid.New()
	store := &fakeStore{
		users: map[uuid.UUID]*models.User{
			user: {ID: user, Language: "hr", FCMToken: "tok-9"},
		},
		matches: map[uuid.UUID]*models.Match{
			match: {ID: match},
		},
	}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.MatchConfirmationCreated{MatchID: match, UserID: user})

	require.Len(t, sender.sent, 1)
	call := sender.sent[0]
	assert.Equal(t, "Pronađen meč!", call.payload.Title)
	assert.Equal(t, "Potvrdi da želiš igrati.", call.payload.Body)
	assert.Equal(t, map[string]string{
		"type":    "match_found",
		"matchId": match.String(),
	}, call.payload.Data)
}

func TestDispatchMatchFoundSkipsDeletedMatch(t *testing.T) {
	user := uuid.New()
	store := &fakeStore{
		users: map[uuid.UUID]*models.User{
			user: {ID: user, FCMToken: "tok-9"},
		},
	}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.MatchConfirmationCreated{MatchID: uuid.New(), UserID: user})

	assert.Empty(t, sender.sent)
}

func TestDispatchSwallowsStorageFault(t *testing.T) {
	store := &fakeStore{down: true}
	sender := &fakeSender{}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendRequestCreated{
		RecipientID: uuid.New(),
		SenderID:    uuid.New(),
	})

	assert.Empty(t, sender.sent, "a storage fault must terminate the pass with no delivery")
}

func TestDispatchDeliveryFaultIsNotRetried(t *testing.T) {
	u1 := uuid.New()
	u2 := uuid.New()
	store := &fakeStore{users: map[uuid.UUID]*models.User{
		u1: {ID: u1, FirstName: "Marko", LastName: "Kovac", FCMToken: "tok-1"},
		u2: {ID: u2, FirstName: "Ana", LastName: "Babic"},
	}}
	sender := &fakeSender{err: errors.New("push endpoint returned 503")}

	d := newTestDispatcher(store, sender)
	d.Dispatch(context.Background(), models.FriendRequestCreated{RecipientID: u1, SenderID: u2})

	assert.Len(t, sender.sent, 1, "exactly one delivery attempt per event")
}
