// internal/models/player.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is a registered account. Players join rooms and occupy seats in games.
type Player struct {
	ID        uuid.UUID `json:"playerID"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}

// Winner identifies the player a finished game was awarded to.
type Winner struct {
	WinnerID uuid.UUID `json:"winnerID"`
	Username string    `json:"username"`
}
