package models

import "github.com/google/uuid"

// User is a point-in-time snapshot of a user document as read from storage.
// Field-name variants in the underlying document (firstName vs the legacy
// firstname) are already normalized by the store layer; consumers never see
// the raw keys.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Language  string    `json:"language,omitempty"`
	FCMToken  string    `json:"fcmToken,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Email     string    `json:"email,omitempty"`
}

// DisplayName is the human-readable name used in notification bodies.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// ProfileProjection is the public view of a friend returned by the
// friend-list query. Missing attributes project to empty strings rather
// than being omitted.
type ProfileProjection struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	AvatarURL string    `json:"avatarUrl"`
	Email     string    `json:"email"`
}
