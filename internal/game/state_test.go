// internal/game/state_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForHidesOpponentMovementCards(t *testing.T) {
	g, _ := setupTestGame(t, 2)
	p1, p2 := g.Seats[0].PlayerID, g.Seats[1].PlayerID

	info := g.StatusFor(p1)
	require.Len(t, info.Players, 2)

	var own, opponent *PlayerState
	for i := range info.Players {
		switch info.Players[i].PlayerID {
		case p1:
			own = &info.Players[i]
		case p2:
			opponent = &info.Players[i]
		}
	}
	require.NotNil(t, own)
	require.NotNil(t, opponent)

	require.Len(t, own.CardsMovement, 3)
	for _, c := range own.CardsMovement {
		assert.NotNil(t, c)
	}
	require.Len(t, opponent.CardsMovement, 3)
	for _, c := range opponent.CardsMovement {
		assert.Nil(t, c)
	}
}

func TestStatusForRevealsUsedOpponentCards(t *testing.T) {
	g, _ := setupTestGame(t, 2)
	p1, p2 := g.Seats[0].PlayerID, g.Seats[1].PlayerID

	card := g.movementHandOf(p1)[0]
	card.Type = MoveStraightOne
	require.NoError(t, g.PlayMovement(p1, card.ID, Position{X: 0, Y: 0}, Position{X: 0, Y: 1}))

	info := g.StatusFor(p2)
	for _, ps := range info.Players {
		if ps.PlayerID != p1 {
			continue
		}
		revealed := 0
		for _, c := range ps.CardsMovement {
			if c != nil {
				assert.Equal(t, card.ID, c.CardID)
				assert.True(t, c.IsUsed)
				revealed++
			}
		}
		assert.Equal(t, 1, revealed)
	}
}

func TestStatusForMarksPartialCells(t *testing.T) {
	g, _ := setupTestGame(t, 2)
	p1 := g.Seats[0].PlayerID

	card := g.movementHandOf(p1)[0]
	card.Type = MoveStraightOne
	require.NoError(t, g.PlayMovement(p1, card.ID, Position{X: 2, Y: 2}, Position{X: 2, Y: 3}))

	info := g.StatusFor(p1)
	partial := map[Position]bool{}
	for _, piece := range info.Board {
		if piece.IsPartial {
			partial[Position{X: piece.X, Y: piece.Y}] = true
		}
	}
	assert.Equal(t, map[Position]bool{
		{X: 2, Y: 2}: true,
		{X: 2, Y: 3}: true,
	}, partial)
}

func TestStatusForCountsHiddenDeck(t *testing.T) {
	g, _ := setupTestGame(t, 2)
	p1 := g.Seats[0].PlayerID
	g.Board = squareBoard(t)

	info := g.StatusFor(p1)
	for _, ps := range info.Players {
		assert.Len(t, ps.CardsFigure, 3)
		assert.Equal(t, 22, ps.SizeDeckFigure)
	}
	assert.Equal(t, 1, info.PosEnabledToPlay)
	assert.Equal(t, float64(0), info.Timer, "timer not armed before Begin")
	assert.Len(t, info.FiguresToUse, 2, "the blue and green squares")
}
