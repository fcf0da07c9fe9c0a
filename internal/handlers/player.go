// internal/handlers/player.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ingsoft-famaf/switcher/internal/auth"
	"github.com/ingsoft-famaf/switcher/internal/database"
	"github.com/ingsoft-famaf/switcher/internal/models"
)

type createPlayerRequest struct {
	Username string `json:"username"`
}

// CreatePlayerHandler registers a new player and hands back a session cookie.
//
// POST /players
func (s *Server) CreatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateNameField("username", req.Username); msg != "" {
		writeDetail(w, http.StatusBadRequest, msg)
		return
	}

	player := &models.Player{Username: req.Username}
	if err := database.CreatePlayer(r.Context(), player); err != nil {
		s.Logger.Errorf("failed to create player: %v", err)
		writeDetail(w, http.StatusInternalServerError, "failed to create player")
		return
	}

	token, err := auth.CreateSessionToken(player.ID.String())
	if err != nil {
		s.Logger.Errorf("failed to create session token: %v", err)
		writeDetail(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusCreated, player)
}
