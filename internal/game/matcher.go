// internal/game/matcher.go
//
// Figure matching works on per-color binary layers of the board. A shape
// matches a placement when every one of its cells lands on the layer's color
// (a windowed sum equal to the shape's cell count) and the placement is
// isolated: no orthogonal neighbor outside the figure shares its color.
package game

import (
	"sort"
	"strconv"
	"strings"
)

// colorLayer builds the 0/1 occupancy matrix for one color. Rows are indexed
// by y and columns by x.
func colorLayer(b Board, c Color) [][]int {
	layer := make([][]int, BoardSide)
	for y := range layer {
		layer[y] = make([]int, BoardSide)
	}
	for _, cell := range b {
		if cell.Color == c {
			layer[cell.Y][cell.X] = 1
		}
	}
	return layer
}

// matchShapeInLayer slides shape over the layer and collects every placement
// whose cells all carry the layer's color and pass the border rule.
func matchShapeInLayer(shape Shape, layer [][]int) [][]Position {
	h, w := len(shape), len(shape[0])
	want := cellCount(shape)

	var found [][]Position
	for oy := 0; oy+h <= BoardSide; oy++ {
		for ox := 0; ox+w <= BoardSide; ox++ {
			sum := 0
			for sy := 0; sy < h; sy++ {
				for sx := 0; sx < w; sx++ {
					if shape[sy][sx] == 1 {
						sum += layer[oy+sy][ox+sx]
					}
				}
			}
			if sum != want {
				continue
			}
			cells := make([]Position, 0, want)
			for sy := 0; sy < h; sy++ {
				for sx := 0; sx < w; sx++ {
					if shape[sy][sx] == 1 {
						cells = append(cells, Position{X: ox + sx, Y: oy + sy})
					}
				}
			}
			if borderIsolated(cells, layer) {
				found = append(found, cells)
			}
		}
	}
	return found
}

// borderIsolated reports whether no cell orthogonally adjacent to the figure,
// and outside it, carries the figure's color.
func borderIsolated(cells []Position, layer [][]int) bool {
	inFigure := make(map[Position]bool, len(cells))
	for _, p := range cells {
		inFigure[p] = true
	}
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, p := range cells {
		for _, d := range deltas {
			n := Position{X: p.X + d[0], Y: p.Y + d[1]}
			if inBounds(n) && !inFigure[n] && layer[n.Y][n.X] == layer[p.Y][p.X] {
				return false
			}
		}
	}
	return true
}

// MatchesShape reports whether the played cells form the card's shape under
// some rotation. The cells are normalized to their bounding box before
// comparing against each quarter-turn of the catalog shape.
func MatchesShape(t FigureType, cells []Position) bool {
	shape, ok := figureShapes[t]
	if !ok || len(cells) == 0 {
		return false
	}

	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := cells[0].X, cells[0].Y
	for _, p := range cells[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	grid := make(Shape, maxY-minY+1)
	for i := range grid {
		grid[i] = make([]int, maxX-minX+1)
	}
	for _, p := range cells {
		grid[p.Y-minY][p.X-minX] = 1
	}

	for _, rot := range rotationsOf(shape) {
		if shapesEqual(grid, rot) {
			return true
		}
	}
	return false
}

// AvailableFigures exhaustively discovers every claimable figure on the
// board: for each color except the prohibited one, each catalog shape is
// matched in all four rotations. Matches are deduplicated by their absolute
// cell set, so symmetric shapes found via two rotations count once.
func AvailableFigures(b Board, prohibited Color) [][]Position {
	var all [][]Position
	seen := make(map[string]bool)

	for _, c := range Colors {
		if c == prohibited {
			continue
		}
		layer := colorLayer(b, c)
		for _, t := range figureTypes {
			for _, rot := range rotationsOf(figureShapes[t]) {
				for _, cells := range matchShapeInLayer(rot, layer) {
					key := cellSetKey(cells)
					if !seen[key] {
						seen[key] = true
						all = append(all, cells)
					}
				}
			}
		}
	}
	return all
}

func cellSetKey(cells []Position) string {
	sorted := make([]Position, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	var sb strings.Builder
	for _, p := range sorted {
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
		sb.WriteByte(';')
	}
	return sb.String()
}
