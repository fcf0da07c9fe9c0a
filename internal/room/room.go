// internal/room/room.go
package room

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ingsoft-famaf/switcher/internal/auth"
	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/models"
)

// Room errors reuse the engine's typed error so transport layers map every
// rule violation the same way.
var (
	ErrRoomNotFound    = game.NotFound("La sala no existe.")
	ErrRoomFull        = game.Forbidden("La sala está llena.")
	ErrGameStarted     = game.Forbidden("La partida ya ha comenzado.")
	ErrWrongPassword   = game.Forbidden("Contraseña incorrecta.")
	ErrNotInRoom       = game.Forbidden("El jugador no se encuentra en la sala.")
	ErrNotOwner        = game.Forbidden("Solo el propietario puede iniciar la partida.")
	ErrRoomNoPassword = game.Forbidden("La sala no tiene contraseña.")
	ErrAlreadyInRoom  = game.Forbidden("El jugador ya se encuentra en la sala.")
)

// Room is an ephemeral pre-game grouping of players. Private rooms carry an
// argon2id password hash; the plaintext never leaves the join request.
type Room struct {
	ID         uuid.UUID `json:"roomID"`
	Name       string    `json:"roomName"`
	OwnerID    uuid.UUID `json:"ownerID"`
	MinPlayers int       `json:"minPlayers"`
	MaxPlayers int       `json:"maxPlayers"`
	InGame     bool      `json:"inGame"`

	passwordHash string

	// Players in join order; the owner is always index 0.
	Players []*models.Player `json:"players"`

	Mu sync.Mutex `json:"-"`
}

// New creates a room with the owner already seated. password may be empty
// for a public room.
func New(name string, owner *models.Player, minPlayers, maxPlayers int, password string) (*Room, error) {
	r := &Room{
		ID:         uuid.New(),
		Name:       name,
		OwnerID:    owner.ID,
		MinPlayers: minPlayers,
		MaxPlayers: maxPlayers,
		Players:    []*models.Player{owner},
	}
	if password != "" {
		hash, err := auth.CreateHash(password)
		if err != nil {
			return nil, err
		}
		r.passwordHash = hash
	}
	return r, nil
}

// IsPrivate reports whether joining requires a password.
func (r *Room) IsPrivate() bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.passwordHash != ""
}

// Join seats a player. Private rooms verify the password; full or already
// started rooms reject the join.
func (r *Room) Join(p *models.Player, password string) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.InGame {
		return ErrGameStarted
	}
	if r.hasPlayer(p.ID) {
		return ErrAlreadyInRoom
	}
	if len(r.Players) >= r.MaxPlayers {
		return ErrRoomFull
	}
	if r.passwordHash != "" {
		ok, err := auth.ComparePasswordAndHash(password, r.passwordHash)
		if err != nil {
			return err
		}
		if !ok {
			return ErrWrongPassword
		}
	}

	r.Players = append(r.Players, p)
	return nil
}

// Leave unseats a player. When the owner leaves, the room is cancelled and
// the caller is told to delete it.
func (r *Room) Leave(playerID uuid.UUID) (cancelled bool, err error) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.InGame {
		return false, ErrGameStarted
	}
	if !r.hasPlayer(playerID) {
		return false, ErrNotInRoom
	}

	for i, p := range r.Players {
		if p.ID == playerID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			break
		}
	}
	return playerID == r.OwnerID, nil
}

// HasPlayer reports whether the player is seated in the room.
func (r *Room) HasPlayer(playerID uuid.UUID) bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.hasPlayer(playerID)
}

func (r *Room) hasPlayer(playerID uuid.UUID) bool {
	for _, p := range r.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Snapshot returns the players currently seated, in join order.
func (r *Room) Snapshot() []*models.Player {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	players := make([]*models.Player, len(r.Players))
	copy(players, r.Players)
	return players
}

// MarkStarted flips the room into its in-game state. Fails if a game already
// started or the minimum player count is not met.
func (r *Room) MarkStarted() error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.InGame {
		return ErrGameStarted
	}
	if len(r.Players) < r.MinPlayers {
		return game.ErrNotEnoughPlayers
	}
	r.InGame = true
	return nil
}

// PublicInfo is the listing entry for the room browser.
type PublicInfo struct {
	RoomID         uuid.UUID `json:"roomID"`
	RoomName       string    `json:"roomName"`
	CurrentPlayers int       `json:"currentPlayers"`
	MaxPlayers     int       `json:"maxPlayers"`
	Private        bool      `json:"private"`
	Started        bool      `json:"started"`
}

// Info builds the listing entry for this room.
func (r *Room) Info() PublicInfo {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return PublicInfo{
		RoomID:         r.ID,
		RoomName:       r.Name,
		CurrentPlayers: len(r.Players),
		MaxPlayers:     r.MaxPlayers,
		Private:        r.passwordHash != "",
		Started:        r.InGame,
	}
}
