package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termin-app/notify-service/internal/models"
)

func TestParseEventFriendRequest(t *testing.T) {
	recipient := uuid.New()
	sender := uuid.New()

	ev, err := ParseEvent(Record{
		Path: "users/" + recipient.String() + "/incomingRequests/req-42",
		Data: map[string]string{"from": sender.String()},
	})
	require.NoError(t, err)

	fr, ok := ev.(models.FriendRequestCreated)
	require.True(t, ok, "expected FriendRequestCreated, got %T", ev)
	assert.Equal(t, recipient, fr.RecipientID)
	assert.Equal(t, "req-42", fr.RequestID)
	assert.Equal(t, sender, fr.SenderID)
}

func TestParseEventFriendEdge(t *testing.T) {
	owner := uuid.New()
	friend := uuid.New()

	ev, err := ParseEvent(Record{
		Path: "users/" + owner.String() + "/friends/" + friend.String(),
	})
	require.NoError(t, err)

	fe, ok := ev.(models.FriendEdgeCreated)
	require.True(t, ok)
	assert.Equal(t, owner, fe.OwnerID)
	assert.Equal(t, friend, fe.FriendID)
}

func TestParseEventMatchConfirmation(t *testing.T) {
	matchID := uuid.New()
	userID := uuid.New()

	ev, err := ParseEvent(Record{
		Path: "matchConfirmations/" + matchID.String() + "/pending/" + userID.String(),
	})
	require.NoError(t, err)

	mc, ok := ev.(models.MatchConfirmationCreated)
	require.True(t, ok)
	assert.Equal(t, matchID, mc.MatchID)
	assert.Equal(t, userID, mc.UserID)
}

func TestParseEventRejectsUnknownPaths(t *testing.T) {
	paths := []string{
		"",
		"users/" + uuid.NewString(),
		"users/" + uuid.NewString() + "/outgoingRequests/req-1",
		"matches/" + uuid.NewString(),
		"users/a/b/c/d/e",
	}
	for _, path := range paths {
		_, err := ParseEvent(Record{Path: path})
		assert.Error(t, err, "path %q should be rejected", path)
	}
}

func TestParseEventRejectsMalformedIDs(t *testing.T) {
	// Friend request without a "from" field.
	_, err := ParseEvent(Record{
		Path: "users/" + uuid.NewString() + "/incomingRequests/req-1",
	})
	assert.Error(t, err)

	// Non-uuid segment where an id is expected.
	_, err = ParseEvent(Record{
		Path: "users/not-a-uuid/friends/" + uuid.NewString(),
	})
	assert.Error(t, err)
}
