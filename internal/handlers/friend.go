package handlers

import (
	"encoding/json"
	"net/http"
)

// ListFriendsHandler serves GET /friends/list for the authenticated caller.
//
// Responses: 200 with a JSON array of profile projections; 401 with class
// "unauthenticated" when no valid auth_token cookie accompanies the
// request; 500 with class "internal" when the friend-set read fails.
// Authentication happens before any storage access, so an unauthenticated
// call performs zero reads.
func (s *Server) ListFriendsHandler(w http.ResponseWriter, r *http.Request) {
	callerID, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := s.Friends.ListFriends(r.Context(), callerID)
	if err != nil {
		s.Logger.WithError(err).WithField("caller", callerID).Error("friend list query failed")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
