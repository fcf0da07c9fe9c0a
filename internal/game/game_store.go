package game

import (
	"sync"

	"github.com/google/uuid"
)

// GameStore is the in-memory registry of running games.
type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*SwitcherGame
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*SwitcherGame),
	}
}

func (s *GameStore) AddGame(g *SwitcherGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
}

func (s *GameStore) GetGame(id uuid.UUID) (*SwitcherGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// GetGameByRoomID returns the running game started from a room, or nil.
func (s *GameStore) GetGameByRoomID(roomID uuid.UUID) *SwitcherGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.RoomID == roomID {
			return g
		}
	}
	return nil
}
