package notify

import (
	"strings"

	"github.com/termin-app/notify-service/internal/i18n"
	"github.com/termin-app/notify-service/internal/models"
)

// Params carries everything the composer needs beyond the kind and locale.
type Params struct {
	// ActorName is substituted for {{name}} in the templates.
	ActorName string
	// ActorID is the sender or accepter id, attached as routing data for
	// the friend notification kinds.
	ActorID string
	// MatchID is attached as routing data for match notifications.
	MatchID string
}

// Compose builds the localized payload for one notification. It performs no
// I/O and is a pure function of its inputs: identical inputs yield
// identical payloads.
func Compose(kind models.Kind, locale string, p Params) models.NotificationPayload {
	t := i18n.TemplateFor(kind, locale)

	// The receiving client routes on "type" plus the relevant foreign id.
	data := map[string]string{"type": string(kind)}
	switch kind {
	case models.KindFriendRequest:
		data["senderId"] = p.ActorID
	case models.KindFriendAccepted:
		data["accepterId"] = p.ActorID
	case models.KindMatchFound:
		data["matchId"] = p.MatchID
	}

	return models.NotificationPayload{
		Title: strings.ReplaceAll(t.Title, "{{name}}", p.ActorName),
		Body:  strings.ReplaceAll(t.Body, "{{name}}", p.ActorName),
		Data:  data,
	}
}
