// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/room"
)

func (s *Server) lookupGame(w http.ResponseWriter, r *http.Request) (*game.SwitcherGame, bool) {
	gameID, err := uuid.Parse(r.PathValue("gameID"))
	if err != nil {
		writeGameError(w, game.ErrGameNotFound)
		return nil, false
	}
	g, ok := s.Games.GetGame(gameID)
	if !ok {
		writeGameError(w, game.ErrGameNotFound)
		return nil, false
	}
	return g, true
}

type startGameRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
}

// StartGameHandler starts the game for a waiting room.
//
// POST /games/{roomID}
func (s *Server) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.PathValue("roomID"))
	if err != nil {
		writeGameError(w, room.ErrRoomNotFound)
		return
	}
	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, ok := s.Rooms.GetRoom(roomID)
	if !ok {
		writeGameError(w, room.ErrRoomNotFound)
		return
	}
	g, err := s.startGame(r.Context(), target, req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"gameID": g.ID})
}

type turnRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
}

// SkipTurnHandler passes the requester's turn.
//
// PUT /games/{gameID}/turn
func (s *Server) SkipTurnHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := g.SkipTurn(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type playMovementRequest struct {
	PlayerID    uuid.UUID     `json:"playerID"`
	CardID      uuid.UUID     `json:"cardID"`
	Origin      game.Position `json:"origin"`
	Destination game.Position `json:"destination"`
}

// PlayMovementHandler applies a movement card as a pending swap.
//
// POST /games/{gameID}/movement
func (s *Server) PlayMovementHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	var req playMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := g.PlayMovement(req.PlayerID, req.CardID, req.Origin, req.Destination); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type cancelMovementRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
}

// CancelMovementHandler undoes the requester's most recent pending swap.
//
// DELETE /games/{gameID}/movement
func (s *Server) CancelMovementHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	var req cancelMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := g.CancelMovement(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type playFigureRequest struct {
	PlayerID uuid.UUID       `json:"playerID"`
	CardID   uuid.UUID       `json:"cardID"`
	Figure   []game.Position `json:"figure"`
}

// PlayFigureHandler claims a board figure with one of the requester's cards.
//
// POST /games/{gameID}/figure
func (s *Server) PlayFigureHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	var req playFigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := g.PlayFigure(req.PlayerID, req.CardID, req.Figure); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type blockFigureRequest struct {
	PlayerID uuid.UUID       `json:"playerID"`
	TargetID uuid.UUID       `json:"targetID"`
	CardID   uuid.UUID       `json:"cardID"`
	Figure   []game.Position `json:"figure"`
}

// BlockFigureHandler blocks one of an opponent's playable figure cards.
//
// PUT /games/{gameID}/block
func (s *Server) BlockFigureHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	var req blockFigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := g.BlockFigure(req.PlayerID, req.TargetID, req.CardID, req.Figure); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type leaveGameRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
}

// LeaveGameHandler removes the requester from a running game.
//
// PUT /games/{gameID}/leave
func (s *Server) LeaveGameHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return
	}
	var req leaveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := g.Leave(req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
