// internal/game/board_test.go
package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardDealsNineOfEachColor(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(1)))
	require.Len(t, b, BoardSide*BoardSide)

	counts := map[Color]int{}
	for _, cell := range b {
		counts[cell.Color]++
	}
	for _, c := range Colors {
		assert.Equal(t, 9, counts[c], "color %s", c)
	}
}

func TestBoardIndexing(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(2)))
	for x := 0; x < BoardSide; x++ {
		for y := 0; y < BoardSide; y++ {
			cell := b[x*BoardSide+y]
			assert.Equal(t, x, cell.X)
			assert.Equal(t, y, cell.Y)
			assert.Equal(t, cell.Color, b.At(x, y))
		}
	}
}

func TestBoardSwap(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(3)))
	p, q := Position{X: 0, Y: 0}, Position{X: 5, Y: 5}
	cp, cq := b.At(p.X, p.Y), b.At(q.X, q.Y)

	b.Swap(p, q)
	assert.Equal(t, cq, b.At(p.X, p.Y))
	assert.Equal(t, cp, b.At(q.X, q.Y))

	b.Swap(p, q)
	assert.Equal(t, cp, b.At(p.X, p.Y))
	assert.Equal(t, cq, b.At(q.X, q.Y))
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(4)))
	clone := b.Clone()

	// Find two cells of different colors so the swap is observable.
	p := Position{X: 0, Y: 0}
	var q Position
	for x := 0; x < BoardSide; x++ {
		for y := 0; y < BoardSide; y++ {
			if b.At(x, y) != b.At(p.X, p.Y) {
				q = Position{X: x, Y: y}
			}
		}
	}
	require.NotEqual(t, b.At(p.X, p.Y), b.At(q.X, q.Y))

	b.Swap(p, q)
	assert.NotEqual(t, b.At(p.X, p.Y), clone.At(p.X, p.Y))
	assert.NotEqual(t, b.At(q.X, q.Y), clone.At(q.X, q.Y))
}
