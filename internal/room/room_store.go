// internal/room/room_store.go
package room

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// RoomStore manages active rooms in memory with thread-safe access.
type RoomStore struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]*Room
}

// NewRoomStore initializes and returns an empty RoomStore.
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[uuid.UUID]*Room),
	}
}

// AddRoom adds a room to the store.
func (s *RoomStore) AddRoom(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r
}

// GetRoom retrieves a room by ID.
func (s *RoomStore) GetRoom(id uuid.UUID) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok
}

// DeleteRoom removes a room from the store.
func (s *RoomStore) DeleteRoom(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

// ListRooms returns every room's listing entry, ordered by name for a stable
// browser view.
func (s *RoomStore) ListRooms() []PublicInfo {
	s.mu.Lock()
	rooms := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	s.mu.Unlock()

	infos := make([]PublicInfo, 0, len(rooms))
	for _, r := range rooms {
		infos = append(infos, r.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].RoomName < infos[j].RoomName })
	return infos
}
