// Package handlers wires the HTTP surface: login, the friend-list query,
// and the websocket endpoint in-app clients hold open to receive
// notifications without the external push hop.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/termin-app/notify-service/internal/auth"
	"github.com/termin-app/notify-service/internal/models"
	"github.com/termin-app/notify-service/internal/push"
)

// FriendLister serves the friend-list query.
type FriendLister interface {
	ListFriends(ctx context.Context, callerID uuid.UUID) ([]models.ProfileProjection, error)
}

// CredentialStore resolves login credentials. An unknown email returns
// (uuid.Nil, "", nil).
type CredentialStore interface {
	Credentials(ctx context.Context, email string) (uuid.UUID, string, error)
}

// Server holds the collaborator handles the HTTP handlers need. Everything
// is constructed in main and passed in; nothing here reaches for globals.
type Server struct {
	Creds   CredentialStore
	Friends FriendLister
	Gateway *push.Gateway
	Logger  *logrus.Logger
}

func NewServer(creds CredentialStore, friends FriendLister, gateway *push.Gateway, logger *logrus.Logger) *Server {
	return &Server{
		Creds:   creds,
		Friends: friends,
		Gateway: gateway,
		Logger:  logger,
	}
}

// authenticate extracts and verifies the auth_token cookie, returning the
// caller's user id. It performs no storage access.
func (s *Server) authenticate(r *http.Request) (uuid.UUID, error) {
	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return uuid.Nil, err
	}
	sub, err := auth.AuthenticateJWT(cookie.Value)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}

// writeError emits the caller-visible fault classification as JSON.
func writeError(w http.ResponseWriter, code int, class string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": class})
}
