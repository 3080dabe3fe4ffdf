package events

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/termin-app/notify-service/internal/models"
)

// Record is one document-created message as pushed by the store-side
// writers: the created document's path plus its field data.
type Record struct {
	Path string            `json:"path"`
	Data map[string]string `json:"data"`
}

// ParseEvent maps a record onto one of the recognized document shapes and
// returns the tagged event for it. Unrecognized paths and malformed ids are
// errors; the consumer logs and skips those records.
func ParseEvent(rec Record) (models.Event, error) {
	parts := strings.Split(strings.Trim(rec.Path, "/"), "/")
	if len(parts) != 4 {
		return nil, fmt.Errorf("unrecognized document path %q", rec.Path)
	}

	switch {
	case parts[0] == "users" && parts[2] == "incomingRequests":
		recipient, err := uuid.Parse(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad user id in %q: %w", rec.Path, err)
		}
		sender, err := uuid.Parse(rec.Data["from"])
		if err != nil {
			return nil, fmt.Errorf("bad sender id in %q: %w", rec.Path, err)
		}
		return models.FriendRequestCreated{
			RecipientID: recipient,
			RequestID:   parts[3],
			SenderID:    sender,
		}, nil

	case parts[0] == "users" && parts[2] == "friends":
		owner, err := uuid.Parse(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad user id in %q: %w", rec.Path, err)
		}
		friend, err := uuid.Parse(parts[3])
		if err != nil {
			return nil, fmt.Errorf("bad friend id in %q: %w", rec.Path, err)
		}
		return models.FriendEdgeCreated{OwnerID: owner, FriendID: friend}, nil

	case parts[0] == "matchConfirmations" && parts[2] == "pending":
		matchID, err := uuid.Parse(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad match id in %q: %w", rec.Path, err)
		}
		userID, err := uuid.Parse(parts[3])
		if err != nil {
			return nil, fmt.Errorf("bad user id in %q: %w", rec.Path, err)
		}
		return models.MatchConfirmationCreated{MatchID: matchID, UserID: userID}, nil
	}

	return nil, fmt.Errorf("unrecognized document path %q", rec.Path)
}
