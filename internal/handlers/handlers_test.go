// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingsoft-famaf/switcher/internal/models"
	"github.com/ingsoft-famaf/switcher/internal/room"
)

func newTestServer() *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewServer(logger)
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// seededRoom puts a two-player room straight into the store, bypassing the
// player registry.
func seededRoom(t *testing.T, s *Server) (*room.Room, *models.Player, *models.Player) {
	t.Helper()
	owner := &models.Player{ID: uuid.New(), Username: "ana"}
	guest := &models.Player{ID: uuid.New(), Username: "beto"}

	r, err := room.New("sala", owner, 2, 4, "")
	require.NoError(t, err)
	require.NoError(t, r.Join(guest, ""))
	s.Rooms.AddRoom(r)
	return r, owner, guest
}

func TestCreateRoomHandlerValidation(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		body   map[string]interface{}
		detail string
	}{
		{
			"min too low",
			map[string]interface{}{"playerID": uuid.New(), "roomName": "sala", "minPlayers": 1, "maxPlayers": 4},
			"El mínimo de jugadores permitidos es 2.",
		},
		{
			"max too high",
			map[string]interface{}{"playerID": uuid.New(), "roomName": "sala", "minPlayers": 2, "maxPlayers": 5},
			"El máximo de jugadores permitidos es 4.",
		},
		{
			"min above max",
			map[string]interface{}{"playerID": uuid.New(), "roomName": "sala", "minPlayers": 4, "maxPlayers": 3},
			"El mínimo de jugadores no puede ser mayor al máximo de jugadores.",
		},
		{
			"empty name",
			map[string]interface{}{"playerID": uuid.New(), "roomName": "", "minPlayers": 2, "maxPlayers": 4},
			"longitud",
		},
		{
			"bad password",
			map[string]interface{}{"playerID": uuid.New(), "roomName": "sala", "minPlayers": 2, "maxPlayers": 4, "password": "con espacios"},
			"caracteres no permitidos",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			s.CreateRoomHandler(rr, jsonRequest(http.MethodPost, "/rooms", tc.body))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.detail)
		})
	}
}

func TestJoinRoomHandlerNotFound(t *testing.T) {
	s := newTestServer()

	req := jsonRequest(http.MethodPut, "/rooms/x/join", map[string]interface{}{"playerID": uuid.New()})
	req.SetPathValue("roomID", uuid.New().String())
	rr := httptest.NewRecorder()
	s.JoinRoomHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "La sala no existe.")
}

func TestLeaveRoomHandlerOwnerCancelsRoom(t *testing.T) {
	s := newTestServer()
	r, owner, _ := seededRoom(t, s)

	req := jsonRequest(http.MethodPut, "/rooms/x/leave", map[string]interface{}{"playerID": owner.ID})
	req.SetPathValue("roomID", r.ID.String())
	rr := httptest.NewRecorder()
	s.LeaveRoomHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	_, ok := s.Rooms.GetRoom(r.ID)
	assert.False(t, ok)
}

func TestListRoomsHandler(t *testing.T) {
	s := newTestServer()
	seededRoom(t, s)

	rr := httptest.NewRecorder()
	s.ListRoomsHandler(rr, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var infos []room.PublicInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "sala", infos[0].RoomName)
	assert.Equal(t, 2, infos[0].CurrentPlayers)
}

func TestStartGameHandler(t *testing.T) {
	s := newTestServer()
	r, owner, guest := seededRoom(t, s)

	// Only the owner may start.
	req := jsonRequest(http.MethodPost, "/games/x", map[string]interface{}{"playerID": guest.ID})
	req.SetPathValue("roomID", r.ID.String())
	rr := httptest.NewRecorder()
	s.StartGameHandler(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Solo el propietario puede iniciar la partida.")

	req = jsonRequest(http.MethodPost, "/games/x", map[string]interface{}{"playerID": owner.ID})
	req.SetPathValue("roomID", r.ID.String())
	rr = httptest.NewRecorder()
	s.StartGameHandler(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		GameID uuid.UUID `json:"gameID"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	g, ok := s.Games.GetGame(resp.GameID)
	require.True(t, ok)
	assert.True(t, g.HasSeat(owner.ID))
	assert.True(t, g.HasSeat(guest.ID))

	// The room is locked once its game runs.
	req = jsonRequest(http.MethodPost, "/games/x", map[string]interface{}{"playerID": owner.ID})
	req.SetPathValue("roomID", r.ID.String())
	rr = httptest.NewRecorder()
	s.StartGameHandler(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "La partida ya ha comenzado.")
}

func TestStartGameHandlerNeedsMinimumPlayers(t *testing.T) {
	s := newTestServer()
	owner := &models.Player{ID: uuid.New(), Username: "ana"}
	r, err := room.New("solitaria", owner, 2, 4, "")
	require.NoError(t, err)
	s.Rooms.AddRoom(r)

	req := jsonRequest(http.MethodPost, "/games/x", map[string]interface{}{"playerID": owner.ID})
	req.SetPathValue("roomID", r.ID.String())
	rr := httptest.NewRecorder()
	s.StartGameHandler(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "No hay suficientes jugadores para iniciar la partida.")
}

func TestSkipTurnHandler(t *testing.T) {
	s := newTestServer()
	r, owner, _ := seededRoom(t, s)

	req := jsonRequest(http.MethodPost, "/games/x", map[string]interface{}{"playerID": owner.ID})
	req.SetPathValue("roomID", r.ID.String())
	rr := httptest.NewRecorder()
	s.StartGameHandler(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	g := s.Games.GetGameByRoomID(r.ID)
	require.NotNil(t, g)

	g.Mu.Lock()
	var current, waiting uuid.UUID
	for _, seat := range g.Seats {
		if seat.Position == g.TurnPos {
			current = seat.PlayerID
		} else {
			waiting = seat.PlayerID
		}
	}
	g.Mu.Unlock()

	skip := func(playerID uuid.UUID) *httptest.ResponseRecorder {
		req := jsonRequest(http.MethodPut, fmt.Sprintf("/games/%s/turn", g.ID), map[string]interface{}{"playerID": playerID})
		req.SetPathValue("gameID", g.ID.String())
		rr := httptest.NewRecorder()
		s.SkipTurnHandler(rr, req)
		return rr
	}

	out := skip(waiting)
	assert.Equal(t, http.StatusForbidden, out.Code)
	assert.Contains(t, out.Body.String(), "No es el turno del jugador.")

	out = skip(current)
	assert.Equal(t, http.StatusOK, out.Code)
}

func TestGameHandlersUnknownGame(t *testing.T) {
	s := newTestServer()

	req := jsonRequest(http.MethodPut, "/games/x/turn", map[string]interface{}{"playerID": uuid.New()})
	req.SetPathValue("gameID", uuid.New().String())
	rr := httptest.NewRecorder()
	s.SkipTurnHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "El juego no existe.")
}
