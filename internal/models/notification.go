package models

// Kind selects the template set and routing data shape for a notification.
type Kind string

const (
	KindFriendRequest  Kind = "friend_request"
	KindFriendAccepted Kind = "friend_accepted"
	KindMatchFound     Kind = "match_found"
)

// NotificationPayload is built fresh for each event and discarded after the
// delivery hand-off; it is never persisted.
type NotificationPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}
