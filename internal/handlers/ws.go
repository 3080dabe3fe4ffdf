package handlers

import (
	"net/http"

	"github.com/coder/websocket"
)

// WSHandler upgrades /ws connections for in-app notification delivery. The
// caller must be authenticated; the device's delivery address comes from
// the token query parameter and keys the connection in the gateway.
func (s *Server) WSHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	address := r.URL.Query().Get("token")
	if address == "" {
		http.Error(w, "missing token query parameter", http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // Adjust for production security.
	})
	if err != nil {
		s.Logger.WithError(err).Warn("websocket accept failed")
		return
	}

	s.Gateway.Register(address, c)
	defer s.Gateway.Unregister(address, c)

	// Drain reads until the client goes away. Delivery happens through the
	// gateway, never through this loop.
	ctx := r.Context()
	for {
		if _, _, err := c.Read(ctx); err != nil {
			break
		}
	}
	c.Close(websocket.StatusNormalClosure, "")
}
