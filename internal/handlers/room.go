// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ingsoft-famaf/switcher/internal/room"
)

type createRoomRequest struct {
	PlayerID   uuid.UUID `json:"playerID"`
	RoomName   string    `json:"roomName"`
	MinPlayers int       `json:"minPlayers"`
	MaxPlayers int       `json:"maxPlayers"`
	Password   string    `json:"password"`
}

// CreateRoomHandler opens a new room with the requester as owner.
//
// POST /rooms
func (s *Server) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateNameField("roomName", req.RoomName); msg != "" {
		writeDetail(w, http.StatusBadRequest, msg)
		return
	}
	if req.Password != "" {
		if msg := validatePassword(req.Password); msg != "" {
			writeDetail(w, http.StatusBadRequest, msg)
			return
		}
	}
	if req.MinPlayers < 2 {
		writeDetail(w, http.StatusBadRequest, "El mínimo de jugadores permitidos es 2.")
		return
	}
	if req.MaxPlayers > 4 {
		writeDetail(w, http.StatusBadRequest, "El máximo de jugadores permitidos es 4.")
		return
	}
	if req.MinPlayers > req.MaxPlayers {
		writeDetail(w, http.StatusBadRequest, "El mínimo de jugadores no puede ser mayor al máximo de jugadores.")
		return
	}

	owner, err := s.resolvePlayer(r.Context(), req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	newRoom, err := room.New(req.RoomName, owner, req.MinPlayers, req.MaxPlayers, req.Password)
	if err != nil {
		s.Logger.Errorf("failed to create room: %v", err)
		writeDetail(w, http.StatusInternalServerError, "failed to create room")
		return
	}
	s.Rooms.AddRoom(newRoom)
	s.RoomConns.BroadcastRoomList(s.Rooms.ListRooms())

	writeJSON(w, http.StatusCreated, map[string]interface{}{"roomID": newRoom.ID})
}

type joinRoomRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
	Password string    `json:"password"`
}

// JoinRoomHandler seats a player in an existing room.
//
// PUT /rooms/{roomID}/join
func (s *Server) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.PathValue("roomID"))
	if err != nil {
		writeGameError(w, room.ErrRoomNotFound)
		return
	}
	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, ok := s.Rooms.GetRoom(roomID)
	if !ok {
		writeGameError(w, room.ErrRoomNotFound)
		return
	}
	player, err := s.resolvePlayer(r.Context(), req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	if err := target.Join(player, req.Password); err != nil {
		writeGameError(w, err)
		return
	}
	s.RoomConns.BroadcastRoom(target.Info())
	s.RoomConns.BroadcastRoomList(s.Rooms.ListRooms())

	writeJSON(w, http.StatusOK, target.Info())
}

type leaveRoomRequest struct {
	PlayerID uuid.UUID `json:"playerID"`
}

// LeaveRoomHandler unseats a player. If the owner leaves, the room is
// cancelled for everyone.
//
// PUT /rooms/{roomID}/leave
func (s *Server) LeaveRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.PathValue("roomID"))
	if err != nil {
		writeGameError(w, room.ErrRoomNotFound)
		return
	}
	var req leaveRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, ok := s.Rooms.GetRoom(roomID)
	if !ok {
		writeGameError(w, room.ErrRoomNotFound)
		return
	}
	cancelled, err := target.Leave(req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	if cancelled {
		s.Rooms.DeleteRoom(roomID)
		s.RoomConns.BroadcastCancel(roomID)
	} else {
		s.RoomConns.BroadcastRoom(target.Info())
	}
	s.RoomConns.BroadcastRoomList(s.Rooms.ListRooms())

	w.WriteHeader(http.StatusOK)
}

// ListRoomsHandler returns the room browser listing.
//
// GET /rooms
func (s *Server) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Rooms.ListRooms())
}
