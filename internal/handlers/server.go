// internal/handlers/server.go
package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ingsoft-famaf/switcher/internal/database"
	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/models"
	"github.com/ingsoft-famaf/switcher/internal/room"
)

// Server holds the shared state behind every HTTP and websocket handler.
type Server struct {
	Rooms     *room.RoomStore
	Games     *game.GameStore
	Conns     *GameConnections
	RoomConns *RoomConnections
	Logger    *logrus.Logger
}

func NewServer(logger *logrus.Logger) *Server {
	return &Server{
		Rooms:     room.NewRoomStore(),
		Games:     game.NewGameStore(),
		Conns:     NewGameConnections(logger),
		RoomConns: NewRoomConnections(logger),
		Logger:    logger,
	}
}

// startGame turns a waiting room into a live game. Only the room owner may
// start, and the room must hold at least its configured minimum of players.
func (s *Server) startGame(ctx context.Context, r *room.Room, requesterID uuid.UUID) (*game.SwitcherGame, error) {
	if r.OwnerID != requesterID {
		return nil, room.ErrNotOwner
	}
	if err := r.MarkStarted(); err != nil {
		return nil, err
	}

	g := game.NewSwitcherGame(r.ID, r.Snapshot())
	g.BroadcastStatusFn = s.Conns.SendStatus
	g.BroadcastEndFn = s.Conns.SendEnd
	g.SendLogFn = s.Conns.SendLog
	g.OnGameEnd = s.teardownGame

	s.Games.AddGame(g)

	if database.DB != nil {
		if err := database.RecordGameStart(ctx, g); err != nil {
			s.Logger.Warnf("failed to record start of game %s: %v", g.ID, err)
		}
	}

	g.Begin()
	s.RoomConns.BroadcastStart(r.ID, g.ID)
	s.RoomConns.BroadcastRoomList(s.Rooms.ListRooms())
	return g, nil
}

// teardownGame runs once a game produces a winner. Results are persisted,
// lingering sockets are closed and both the game and its room are removed.
func (s *Server) teardownGame(g *game.SwitcherGame, winner models.Winner) {
	if database.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.RecordGameResult(ctx, g.ID, winner); err != nil {
			s.Logger.Warnf("failed to record result of game %s: %v", g.ID, err)
		}
	}

	s.Conns.CloseAll(g.ID)
	s.Games.DeleteGame(g.ID)
	s.Rooms.DeleteRoom(g.RoomID)
	s.RoomConns.BroadcastCancel(g.RoomID)
	s.RoomConns.BroadcastRoomList(s.Rooms.ListRooms())

	s.Logger.Infof("game %s finished, winner %s", g.ID, winner.Username)
}

// resolvePlayer loads a registered player or reports the domain error the
// REST layer maps to 404.
func (s *Server) resolvePlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	p, err := database.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, game.ErrPlayerNotFound
	}
	return p, nil
}
