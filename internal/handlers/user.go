package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/termin-app/notify-service/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler authenticates email+password and issues the auth_token
// cookie the query endpoints require. The token is also returned in the
// response body for non-browser clients.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}

	id, hash, err := s.Creds.Credentials(r.Context(), req.Email)
	if err != nil {
		s.Logger.WithError(err).Error("credential lookup failed")
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}
	if id == uuid.Nil {
		http.Error(w, "authentication failed", http.StatusForbidden)
		return
	}

	ok, err := auth.VerifyPassword(req.Password, hash)
	if err != nil || !ok {
		http.Error(w, "authentication failed", http.StatusForbidden)
		return
	}

	token, err := auth.CreateJWT(id.String())
	if err != nil {
		s.Logger.WithError(err).Error("failed to create jwt")
		http.Error(w, "failed to create token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		MaxAge:   auth.TokenExpireSeconds,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token})
}
