// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ingsoft-famaf/switcher/internal/middleware"
	"github.com/ingsoft-famaf/switcher/internal/room"
)

const frameStart = "start"

// RoomConnections tracks the room-browser viewers and the per-room lobby
// viewers, and pushes them updated listings as rooms change.
type RoomConnections struct {
	logger *logrus.Logger

	mu        sync.Mutex
	listConns map[*websocket.Conn]struct{}
	roomConns map[uuid.UUID]map[uuid.UUID]*websocket.Conn
}

func NewRoomConnections(logger *logrus.Logger) *RoomConnections {
	return &RoomConnections{
		logger:    logger,
		listConns: make(map[*websocket.Conn]struct{}),
		roomConns: make(map[uuid.UUID]map[uuid.UUID]*websocket.Conn),
	}
}

func (rc *RoomConnections) registerList(c *websocket.Conn) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.listConns[c] = struct{}{}
}

func (rc *RoomConnections) unregisterList(c *websocket.Conn) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.listConns, c)
}

func (rc *RoomConnections) registerRoom(roomID, playerID uuid.UUID, c *websocket.Conn) {
	rc.mu.Lock()
	prev := rc.roomConns[roomID][playerID]
	if rc.roomConns[roomID] == nil {
		rc.roomConns[roomID] = make(map[uuid.UUID]*websocket.Conn)
	}
	rc.roomConns[roomID][playerID] = c
	rc.mu.Unlock()

	if prev != nil {
		prev.Close(DuplicateConnectionClose, "Conexión abierta en otra pestaña")
	}
}

func (rc *RoomConnections) unregisterRoom(roomID, playerID uuid.UUID, c *websocket.Conn) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.roomConns[roomID][playerID] == c {
		delete(rc.roomConns[roomID], playerID)
		if len(rc.roomConns[roomID]) == 0 {
			delete(rc.roomConns, roomID)
		}
	}
}

// BroadcastRoomList pushes the updated listing to every room-browser viewer.
func (rc *RoomConnections) BroadcastRoomList(infos []room.PublicInfo) {
	rc.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(rc.listConns))
	for c := range rc.listConns {
		conns = append(conns, c)
	}
	rc.mu.Unlock()

	for _, c := range conns {
		rc.send(c, wsFrame{Type: frameStatus, Payload: infos})
	}
}

// BroadcastRoom pushes the room's updated state to everyone seated in it.
func (rc *RoomConnections) BroadcastRoom(info room.PublicInfo) {
	for _, c := range rc.connsOf(info.RoomID) {
		rc.send(c, wsFrame{Type: frameStatus, Payload: info})
	}
}

// BroadcastStart tells the room's viewers their game has begun.
func (rc *RoomConnections) BroadcastStart(roomID, gameID uuid.UUID) {
	payload := map[string]uuid.UUID{"gameID": gameID}
	for _, c := range rc.connsOf(roomID) {
		rc.send(c, wsFrame{Type: frameStart, Payload: payload})
	}
}

// BroadcastCancel tells the room's viewers the room was cancelled, then
// closes and forgets their connections.
func (rc *RoomConnections) BroadcastCancel(roomID uuid.UUID) {
	rc.mu.Lock()
	conns := rc.roomConns[roomID]
	delete(rc.roomConns, roomID)
	rc.mu.Unlock()

	for _, c := range conns {
		rc.send(c, wsFrame{Type: frameEnd, Payload: struct{}{}})
		c.Close(websocket.StatusNormalClosure, "room cancelled")
	}
}

func (rc *RoomConnections) connsOf(roomID uuid.UUID) []*websocket.Conn {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(rc.roomConns[roomID]))
	for _, c := range rc.roomConns[roomID] {
		conns = append(conns, c)
	}
	return conns
}

func (rc *RoomConnections) send(c *websocket.Conn, frame wsFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		rc.logger.Errorf("failed to marshal %s frame: %v", frame.Type, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.Write(ctx, websocket.MessageText, data); err != nil {
			rc.logger.Warnf("failed to write %s frame: %v", frame.Type, err)
		}
	}()
}

// RoomListWSHandler streams the room listing to the browser view: the full
// list on connect, then an update whenever any room changes.
//
// GET /rooms/ws/{playerID}
func (s *Server) RoomListWSHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(r.PathValue("playerID")); err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.Logger.Warnf("WebSocket accept error for room list: %v", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "internal server error during handler exit")

	middleware.LogWebSocketConnect(s.Logger, r.RemoteAddr, r.URL.Path)
	s.RoomConns.registerList(c)
	s.RoomConns.send(c, wsFrame{Type: frameStatus, Payload: s.Rooms.ListRooms()})

	readErr := keepListening(r.Context(), c)

	s.RoomConns.unregisterList(c)
	middleware.LogWebSocketDisconnect(s.Logger, r.RemoteAddr, r.URL.Path, readErr)
	c.Close(websocket.StatusNormalClosure, "")
}

// RoomWSHandler streams one room's state to a seated player while they wait
// for the game to start.
//
// GET /rooms/ws/{playerID}/{roomID}
func (s *Server) RoomWSHandler(w http.ResponseWriter, r *http.Request) {
	playerID, pidErr := uuid.Parse(r.PathValue("playerID"))
	roomID, ridErr := uuid.Parse(r.PathValue("roomID"))
	if pidErr != nil || ridErr != nil {
		http.Error(w, "invalid room or player id", http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.Logger.Warnf("WebSocket accept error for room %s: %v", roomID, err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "internal server error during handler exit")

	target, ok := s.Rooms.GetRoom(roomID)
	if !ok {
		c.Close(GameNotFoundClose, "La sala no existe.")
		return
	}
	if !target.HasPlayer(playerID) {
		c.Close(PlayerNotInGameClose, "El jugador no se encuentra en la sala.")
		return
	}

	middleware.LogWebSocketConnect(s.Logger, r.RemoteAddr, r.URL.Path)
	s.RoomConns.registerRoom(roomID, playerID, c)
	s.RoomConns.send(c, wsFrame{Type: frameStatus, Payload: target.Info()})

	readErr := keepListening(r.Context(), c)

	s.RoomConns.unregisterRoom(roomID, playerID, c)
	middleware.LogWebSocketDisconnect(s.Logger, r.RemoteAddr, r.URL.Path, readErr)
	c.Close(websocket.StatusNormalClosure, "")
}

// keepListening drains inbound frames until the client disconnects. Room
// sockets are push-only; anything received is ignored.
func keepListening(ctx context.Context, c *websocket.Conn) error {
	for {
		if _, _, err := c.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil
			}
			return err
		}
	}
}
