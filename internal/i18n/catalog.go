// Package i18n holds the static locale-template catalog for notification
// messages. The catalog is immutable process-wide configuration: adding a
// locale or notification kind is a change to the tables below, not a new
// code path.
package i18n

import "github.com/termin-app/notify-service/internal/models"

// DefaultLocale is used whenever a user has no locale set, or the locale
// has no template set for the requested kind.
const DefaultLocale = "en"

// Template is a title/body pair. Bodies may contain a {{name}} placeholder
// substituted by the composer.
type Template struct {
	Title string
	Body  string
}

var catalog = map[models.Kind]map[string]Template{
	models.KindFriendRequest: {
		"en": {
			Title: "New friend request",
			Body:  "{{name}} sent you a friend request.",
		},
		"hr": {
			Title: "Zahtjev za prijateljstvo",
			Body:  "{{name}} ti je poslao zahtjev za prijateljstvo.",
		},
	},
	models.KindFriendAccepted: {
		"en": {
			Title: "Friend request accepted",
			Body:  "{{name}} accepted your friend request.",
		},
		"hr": {
			Title: "Zahtjev prihvaćen",
			Body:  "{{name}} je prihvatio tvoj zahtjev.",
		},
	},
	models.KindMatchFound: {
		"en": {
			Title: "Match found!",
			Body:  "Please confirm your participation.",
		},
		"hr": {
			Title: "Pronađen meč!",
			Body:  "Potvrdi da želiš igrati.",
		},
	},
}

// TemplateFor returns the template for kind in the given locale, falling
// back to DefaultLocale when the locale is empty or has no entry for that
// kind.
func TemplateFor(kind models.Kind, locale string) Template {
	set := catalog[kind]
	if t, ok := set[locale]; ok {
		return t
	}
	return set[DefaultLocale]
}
