package models

import "github.com/google/uuid"

// Event is a document-created trigger, one variant per recognized document
// shape. The event-source adapter builds these before they reach the
// dispatch pipeline, so the pipeline never inspects path strings.
type Event interface {
	Kind() Kind
}

// FriendRequestCreated fires when a request document appears under a user's
// incomingRequests collection.
type FriendRequestCreated struct {
	RecipientID uuid.UUID // owner of the incomingRequests collection
	RequestID   string
	SenderID    uuid.UUID // the "from" field of the request document
}

func (FriendRequestCreated) Kind() Kind { return KindFriendRequest }

// FriendEdgeCreated fires when a membership document appears under a user's
// friends collection. Each side's edge fires its own event; no dedup is
// performed across the two sides.
type FriendEdgeCreated struct {
	OwnerID  uuid.UUID // owner of the friends collection, the recipient
	FriendID uuid.UUID // the new friend, named in the notification
}

func (FriendEdgeCreated) Kind() Kind { return KindFriendAccepted }

// MatchConfirmationCreated fires when a pending confirmation document
// appears for a participant of a match.
type MatchConfirmationCreated struct {
	MatchID uuid.UUID
	UserID  uuid.UUID // the participant to notify
}

func (MatchConfirmationCreated) Kind() Kind { return KindMatchFound }
