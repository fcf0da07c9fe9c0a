// internal/game/state.go
package game

import (
	"time"

	"github.com/google/uuid"
)

// BoardPiece is one cell of the public board. IsPartial flags cells touched
// by an unconfirmed pending movement.
type BoardPiece struct {
	X         int   `json:"posX"`
	Y         int   `json:"posY"`
	Color     Color `json:"color"`
	IsPartial bool  `json:"isPartial"`
}

// PublicFigureCard is a playable figure card as every player sees it.
type PublicFigureCard struct {
	CardID    uuid.UUID  `json:"cardID"`
	Type      FigureType `json:"type"`
	IsBlocked bool       `json:"isBlocked"`
	PlayerID  uuid.UUID  `json:"playerID"`
	GameID    uuid.UUID  `json:"gameID"`
}

// PublicMovementCard is a movement card in a status snapshot. In another
// player's hand the entry is nil unless the card was used this turn.
type PublicMovementCard struct {
	CardID uuid.UUID    `json:"cardID"`
	Type   MovementType `json:"type"`
	IsUsed bool         `json:"isUsed"`
}

// PlayerState is one seat's public view: visible figure cards, hidden-deck
// size and movement hand (obfuscated for everyone but the owner).
type PlayerState struct {
	PlayerID       uuid.UUID             `json:"playerID"`
	Username       string                `json:"username"`
	Position       int                   `json:"position"`
	IsActive       bool                  `json:"isActive"`
	SizeDeckFigure int                   `json:"sizeDeckFigure"`
	CardsFigure    []PublicFigureCard    `json:"cardsFigure"`
	CardsMovement  []*PublicMovementCard `json:"cardsMovement"`
}

// GamePublicInfo is the personalized read model pushed to one player.
type GamePublicInfo struct {
	GameID           uuid.UUID     `json:"gameID"`
	Board            []BoardPiece  `json:"board"`
	FiguresToUse     [][]Position  `json:"figuresToUse"`
	ProhibitedColor  Color         `json:"prohibitedColor,omitempty"`
	PosEnabledToPlay int           `json:"posEnabledToPlay"`
	Players          []PlayerState `json:"players"`
	Timer            float64       `json:"timer"`
}

// StatusFor builds the state snapshot as seen by one player.
func (g *SwitcherGame) StatusFor(playerID uuid.UUID) *GamePublicInfo {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.statusFor(playerID)
}

// statusFor assumes g.Mu is held.
func (g *SwitcherGame) statusFor(playerID uuid.UUID) *GamePublicInfo {
	info := &GamePublicInfo{
		GameID:           g.ID,
		Board:            g.publicBoard(),
		FiguresToUse:     AvailableFigures(g.Board, g.ProhibitedColor),
		ProhibitedColor:  g.ProhibitedColor,
		PosEnabledToPlay: g.TurnPos,
		Timer:            g.timerSeconds(),
	}

	for _, seat := range g.Seats {
		state := PlayerState{
			PlayerID:    seat.PlayerID,
			Username:    seat.Username,
			Position:    seat.Position,
			IsActive:    seat.IsActive,
			CardsFigure: []PublicFigureCard{},
		}

		for _, c := range g.figureCardsOf(seat.PlayerID) {
			if c.IsPlayable {
				state.CardsFigure = append(state.CardsFigure, PublicFigureCard{
					CardID:    c.ID,
					Type:      c.Type,
					IsBlocked: c.IsBlocked,
					PlayerID:  c.PlayerID,
					GameID:    g.ID,
				})
			} else {
				state.SizeDeckFigure++
			}
		}

		for _, c := range g.movementHandOf(seat.PlayerID) {
			used := g.cardUsedInPending(c.ID)
			if seat.PlayerID == playerID || used {
				state.CardsMovement = append(state.CardsMovement, &PublicMovementCard{
					CardID: c.ID,
					Type:   c.Type,
					IsUsed: used,
				})
			} else {
				state.CardsMovement = append(state.CardsMovement, nil)
			}
		}

		info.Players = append(info.Players, state)
	}
	return info
}

func (g *SwitcherGame) publicBoard() []BoardPiece {
	partial := make(map[Position]bool, 2*len(g.Pending))
	for _, pm := range g.Pending {
		partial[pm.Origin] = true
		partial[pm.Destination] = true
	}

	board := make([]BoardPiece, 0, len(g.Board))
	for _, cell := range g.Board {
		board = append(board, BoardPiece{
			X:         cell.X,
			Y:         cell.Y,
			Color:     cell.Color,
			IsPartial: partial[Position{X: cell.X, Y: cell.Y}],
		})
	}
	return board
}

// timerSeconds reports the remaining turn time. Not clamped at zero; a
// snapshot taken right at expiry may briefly go negative.
func (g *SwitcherGame) timerSeconds() float64 {
	if g.TurnDeadline.IsZero() {
		return 0
	}
	return time.Until(g.TurnDeadline).Seconds()
}
