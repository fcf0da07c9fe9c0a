// internal/game/matcher_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from six strings of six color letters each,
// row y first. Keeps test fixtures readable as a picture of the board.
func boardFromRows(t *testing.T, rows [BoardSide]string) Board {
	t.Helper()
	b := make(Board, 0, BoardSide*BoardSide)
	for x := 0; x < BoardSide; x++ {
		for y := 0; y < BoardSide; y++ {
			require.Len(t, rows[y], BoardSide)
			b = append(b, Cell{X: x, Y: y, Color: Color(rows[y][x : x+1])})
		}
	}
	return b
}

func TestMatchesShapeSquare(t *testing.T) {
	square := []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	assert.True(t, MatchesShape("fige02", square))

	line := []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	assert.False(t, MatchesShape("fige02", line))
	assert.True(t, MatchesShape("fige06", line))

	// Absolute placement must not matter, only the relative arrangement.
	shifted := []Position{{3, 2}, {4, 2}, {3, 3}, {4, 3}}
	assert.True(t, MatchesShape("fige02", shifted))
}

func TestMatchesShapeRotations(t *testing.T) {
	// fige05 is an L: {{1,1,1},{0,0,1}}.
	base := []Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	assert.True(t, MatchesShape("fige05", base))

	// Same L turned a quarter and a half.
	quarter := []Position{{1, 0}, {1, 1}, {0, 2}, {1, 2}}
	assert.True(t, MatchesShape("fige05", quarter))
	half := []Position{{0, 0}, {0, 1}, {1, 1}, {2, 1}}
	assert.True(t, MatchesShape("fige05", half))

	// The mirrored L is a different card, never a rotation.
	mirrored := []Position{{0, 0}, {0, 1}, {1, 0}, {2, 0}}
	assert.False(t, MatchesShape("fige05", mirrored))
}

func TestMatchesShapeRejectsEmptyAndUnknown(t *testing.T) {
	assert.False(t, MatchesShape("fige02", nil))
	assert.False(t, MatchesShape("fig99", []Position{{0, 0}}))
}

func TestBorderIsolated(t *testing.T) {
	b := boardFromRows(t, [BoardSide]string{
		"BBRRRR",
		"BBRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRB",
	})
	layer := colorLayer(b, ColorBlue)
	square := []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	assert.True(t, borderIsolated(square, layer))

	// An adjacent same-color cell outside the figure breaks isolation.
	b2 := boardFromRows(t, [BoardSide]string{
		"BBRRRR",
		"BBRRRR",
		"BRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
	})
	assert.False(t, borderIsolated(square, colorLayer(b2, ColorBlue)))
}

func TestAvailableFiguresFindsIsolatedSquare(t *testing.T) {
	b := boardFromRows(t, [BoardSide]string{
		"BBRRRR",
		"BBRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
	})

	figures := AvailableFigures(b, ColorNone)
	require.Len(t, figures, 1)
	assert.ElementsMatch(t,
		[]Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		figures[0])
}

func TestAvailableFiguresSkipsProhibitedColor(t *testing.T) {
	b := boardFromRows(t, [BoardSide]string{
		"BBRRRR",
		"BBRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
	})
	assert.Empty(t, AvailableFigures(b, ColorBlue))
}

func TestAvailableFiguresUniformBoardHasNone(t *testing.T) {
	b := boardFromRows(t, [BoardSide]string{
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
		"RRRRRR",
	})
	assert.Empty(t, AvailableFigures(b, ColorNone))
}

func TestAvailableFiguresDeduplicatesSymmetricMatches(t *testing.T) {
	// A vertical line of four matches fige06 in two rotations but must be
	// reported once.
	b := boardFromRows(t, [BoardSide]string{
		"GRRRRR",
		"GRRRRR",
		"GRRRRR",
		"GRRRRR",
		"RRRRRR",
		"RRRRRR",
	})
	figures := AvailableFigures(b, ColorNone)
	require.Len(t, figures, 1)
	assert.ElementsMatch(t,
		[]Position{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		figures[0])
}
