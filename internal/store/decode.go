package store

import (
	"github.com/google/uuid"

	"github.com/termin-app/notify-service/internal/models"
)

// decodeUserProfile normalizes a raw user document into a snapshot. Legacy
// writers used all-lowercase keys (firstname, lastname); newer ones use
// camelCase. camelCase wins when both are present. This is the only place
// the raw keys are interpreted.
func decodeUserProfile(id uuid.UUID, doc map[string]any) *models.User {
	return &models.User{
		ID:        id,
		FirstName: docString(doc, "firstName", "firstname"),
		LastName:  docString(doc, "lastName", "lastname"),
		Language:  docString(doc, "language"),
		FCMToken:  docString(doc, "fcmToken"),
		AvatarURL: docString(doc, "avatarUrl"),
		Email:     docString(doc, "email"),
	}
}

// docString returns the first listed key holding a non-empty string, or "".
// Non-string values are treated as missing.
func docString(doc map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := doc[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
