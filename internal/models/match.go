package models

import "github.com/google/uuid"

// Match is read only to confirm the match document still exists when a
// confirmation event fires; the pipeline needs nothing beyond its id.
type Match struct {
	ID uuid.UUID `json:"id"`
}
