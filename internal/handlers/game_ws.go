// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/ingsoft-famaf/switcher/internal/auth"
	"github.com/ingsoft-famaf/switcher/internal/middleware"
	"github.com/ingsoft-famaf/switcher/internal/models"
)

// inboundFrame is what clients may send over the game socket. Only chat
// messages are accepted; every game action goes through the REST surface.
type inboundFrame struct {
	Type    string            `json:"type"`
	Payload models.LogMessage `json:"payload"`
}

// GameWSHandler upgrades the connection for a game viewer, pushes the initial
// personalized status frame and then relays chat messages until disconnect.
//
// GET /games/ws/{gameID}/{playerID}
func (s *Server) GameWSHandler(w http.ResponseWriter, r *http.Request) {
	gameID, gidErr := uuid.Parse(r.PathValue("gameID"))
	playerID, pidErr := uuid.Parse(r.PathValue("playerID"))
	if gidErr != nil || pidErr != nil {
		http.Error(w, "invalid game or player id", http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		Subprotocols:   []string{"game"},
		OriginPatterns: []string{"*"}, // Adjust for production security.
	})
	if err != nil {
		s.Logger.Warnf("WebSocket accept error for game %s: %v", gameID, err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "internal server error during handler exit")

	// Membership problems are reported over the socket with application close
	// codes, so clients can tell them apart from transport failures.
	g, ok := s.Games.GetGame(gameID)
	if !ok {
		c.Close(GameNotFoundClose, "Partida no encontrada.")
		return
	}
	if !g.HasSeat(playerID) {
		c.Close(PlayerNotInGameClose, "El jugador no pertenece a la partida.")
		return
	}

	// A session cookie, when presented, must belong to the claimed player.
	if token := extractCookieToken(r.Header.Get("Cookie"), "session"); token != "" {
		sub, err := auth.AuthenticateSessionToken(token)
		if err != nil || sub != playerID.String() {
			c.Close(PlayerNotInGameClose, "El jugador no pertenece a la partida.")
			return
		}
	}

	middleware.LogWebSocketConnect(s.Logger, r.RemoteAddr, r.URL.Path)
	s.Conns.Register(gameID, playerID, c)

	s.Conns.SendStatusTo(gameID, playerID, g.StatusFor(playerID))

	readErr := s.readChatMessages(r.Context(), c, gameID)

	s.Conns.Unregister(gameID, playerID, c)
	middleware.LogWebSocketDisconnect(s.Logger, r.RemoteAddr, r.URL.Path, readErr)
	c.Close(websocket.StatusNormalClosure, "")
}

// readChatMessages blocks reading frames from one client, relaying chat to
// the whole game. Returns nil on a clean client-side closure.
func (s *Server) readChatMessages(ctx context.Context, c *websocket.Conn, gameID uuid.UUID) error {
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil
			}
			return err
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.Logger.Warnf("discarding malformed frame in game %s: %v", gameID, err)
			continue
		}
		if frame.Type != frameMsg || frame.Payload.Text == "" {
			continue
		}
		s.Conns.SendLog(gameID, frame.Payload)
	}
}
