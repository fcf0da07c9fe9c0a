// internal/game/board.go
package game

import "math/rand"

// Color of a board cell.
type Color string

const (
	ColorRed    Color = "R"
	ColorGreen  Color = "G"
	ColorBlue   Color = "B"
	ColorYellow Color = "Y"

	// ColorNone means no prohibited color is active.
	ColorNone Color = ""
)

// Colors lists every cell color in deal order.
var Colors = []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}

// BoardSide is the board edge length; the board is always BoardSide x BoardSide.
const BoardSide = 6

// Position addresses a single board cell.
type Position struct {
	X int `json:"posX"`
	Y int `json:"posY"`
}

// Cell is one tile of the board.
type Cell struct {
	X     int   `json:"posX"`
	Y     int   `json:"posY"`
	Color Color `json:"color"`
}

// Board holds the 36 cells, indexed x*BoardSide+y.
type Board []Cell

// NewBoard deals a fresh board: nine cells of each color, uniformly shuffled.
func NewBoard(rng *rand.Rand) Board {
	pool := make([]Color, 0, BoardSide*BoardSide)
	for _, c := range Colors {
		for i := 0; i < 9; i++ {
			pool = append(pool, c)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	board := make(Board, 0, BoardSide*BoardSide)
	for x := 0; x < BoardSide; x++ {
		for y := 0; y < BoardSide; y++ {
			board = append(board, Cell{X: x, Y: y, Color: pool[x*BoardSide+y]})
		}
	}
	return board
}

// At returns the color at (x, y).
func (b Board) At(x, y int) Color {
	return b[x*BoardSide+y].Color
}

// Swap exchanges the colors of two cells.
func (b Board) Swap(p, q Position) {
	i := p.X*BoardSide + p.Y
	j := q.X*BoardSide + q.Y
	b[i].Color, b[j].Color = b[j].Color, b[i].Color
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

func inBounds(p Position) bool {
	return p.X >= 0 && p.X < BoardSide && p.Y >= 0 && p.Y < BoardSide
}
