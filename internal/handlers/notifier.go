// internal/handlers/notifier.go
package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ingsoft-famaf/switcher/internal/cache"
	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/models"
)

// Frame types pushed over the game socket.
const (
	frameStatus = "status"
	frameEnd    = "end"
	frameMsg    = "msg"
)

type wsFrame struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// GameConnections tracks the live websocket per (game, player) and delivers
// the engine's notifications. It is constructed once at startup and injected
// wherever needed; delivery is fire-and-forget and never calls back into a
// game.
type GameConnections struct {
	logger *logrus.Logger

	mu    sync.Mutex
	conns map[uuid.UUID]map[uuid.UUID]*websocket.Conn
}

func NewGameConnections(logger *logrus.Logger) *GameConnections {
	return &GameConnections{
		logger: logger,
		conns:  make(map[uuid.UUID]map[uuid.UUID]*websocket.Conn),
	}
}

// Register stores a player's connection. An earlier connection for the same
// player is closed so only one tab views the game.
func (gc *GameConnections) Register(gameID, playerID uuid.UUID, c *websocket.Conn) {
	gc.mu.Lock()
	prev := gc.conns[gameID][playerID]
	if gc.conns[gameID] == nil {
		gc.conns[gameID] = make(map[uuid.UUID]*websocket.Conn)
	}
	gc.conns[gameID][playerID] = c
	gc.mu.Unlock()

	if prev != nil {
		prev.Close(DuplicateConnectionClose, "Conexión abierta en otra pestaña")
	}
}

// Unregister drops a player's connection if it is still the registered one.
func (gc *GameConnections) Unregister(gameID, playerID uuid.UUID, c *websocket.Conn) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if gc.conns[gameID][playerID] == c {
		delete(gc.conns[gameID], playerID)
		if len(gc.conns[gameID]) == 0 {
			delete(gc.conns, gameID)
		}
	}
}

// CloseAll closes every connection of a finished game and forgets them.
func (gc *GameConnections) CloseAll(gameID uuid.UUID) {
	gc.mu.Lock()
	conns := gc.conns[gameID]
	delete(gc.conns, gameID)
	gc.mu.Unlock()

	for _, c := range conns {
		c.Close(websocket.StatusNormalClosure, "game over")
	}
}

// SendStatus delivers each player their personalized snapshot.
func (gc *GameConnections) SendStatus(gameID uuid.UUID, states []game.PersonalStatus) {
	for _, st := range states {
		if c := gc.connOf(gameID, st.PlayerID); c != nil {
			gc.send(c, wsFrame{Type: frameStatus, Payload: st.Info})
		}
	}
}

// SendStatusTo delivers one freshly built snapshot to a single player.
func (gc *GameConnections) SendStatusTo(gameID, playerID uuid.UUID, info *game.GamePublicInfo) {
	if c := gc.connOf(gameID, playerID); c != nil {
		gc.send(c, wsFrame{Type: frameStatus, Payload: info})
	}
}

// SendEnd announces the winner to everyone still connected.
func (gc *GameConnections) SendEnd(gameID uuid.UUID, winner models.Winner) {
	for _, c := range gc.gameConns(gameID) {
		gc.send(c, wsFrame{Type: frameEnd, Payload: winner})
	}
}

// SendLog broadcasts a chat/event feed entry and queues it for archival.
func (gc *GameConnections) SendLog(gameID uuid.UUID, msg models.LogMessage) {
	for _, c := range gc.gameConns(gameID) {
		gc.send(c, wsFrame{Type: frameMsg, Payload: msg})
	}

	if cache.Rdb != nil {
		record := cache.GameLogRecord{
			GameID:    gameID,
			Username:  msg.Username,
			Text:      msg.Text,
			Timestamp: time.Now().Unix(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := cache.PublishGameLog(ctx, record); err != nil {
				gc.logger.Warnf("failed to queue game log for %s: %v", gameID, err)
			}
		}()
	}
}

func (gc *GameConnections) connOf(gameID, playerID uuid.UUID) *websocket.Conn {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.conns[gameID][playerID]
}

func (gc *GameConnections) gameConns(gameID uuid.UUID) []*websocket.Conn {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(gc.conns[gameID]))
	for _, c := range gc.conns[gameID] {
		conns = append(conns, c)
	}
	return conns
}

// send marshals the frame and writes it asynchronously with a timeout, so a
// slow client never blocks the engine.
func (gc *GameConnections) send(c *websocket.Conn, frame wsFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		gc.logger.Errorf("failed to marshal %s frame: %v", frame.Type, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.Write(ctx, websocket.MessageText, data); err != nil {
			gc.logger.Warnf("failed to write %s frame: %v", frame.Type, err)
		}
	}()
}
