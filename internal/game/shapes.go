// internal/game/shapes.go
package game

// FigureType identifies one of the figure card shapes in the catalog.
type FigureType string

// Shape is a binary matrix describing a figure's cells. Rows are indexed by
// the y offset and columns by the x offset within the shape's bounding box.
type Shape [][]int

// The catalog splits into the normal deck ("fig") and the easy deck ("fige").
var normalFigureTypes = []FigureType{
	"fig01", "fig02", "fig03", "fig04", "fig05", "fig06", "fig07", "fig08", "fig09",
	"fig10", "fig11", "fig12", "fig13", "fig14", "fig15", "fig16", "fig17", "fig18",
}

var easyFigureTypes = []FigureType{
	"fige01", "fige02", "fige03", "fige04", "fige05", "fige06", "fige07",
}

// figureTypes is the full catalog in deal order: normal deck first.
var figureTypes = append(append([]FigureType{}, normalFigureTypes...), easyFigureTypes...)

var figureShapes = map[FigureType]Shape{
	"fig01":  {{1, 0, 0}, {1, 1, 1}, {1, 0, 0}},
	"fig02":  {{1, 1, 0, 0}, {0, 1, 1, 1}},
	"fig03":  {{0, 0, 1, 1}, {1, 1, 1, 0}},
	"fig04":  {{1, 0, 0}, {1, 1, 0}, {0, 1, 1}},
	"fig05":  {{1, 1, 1, 1, 1}},
	"fig06":  {{1, 0, 0}, {1, 0, 0}, {1, 1, 1}},
	"fig07":  {{1, 1, 1, 1}, {0, 0, 0, 1}},
	"fig08":  {{0, 0, 0, 1}, {1, 1, 1, 1}},
	"fig09":  {{0, 0, 1}, {1, 1, 1}, {0, 1, 0}},
	"fig10":  {{0, 0, 1}, {1, 1, 1}, {1, 0, 0}},
	"fig11":  {{1, 0, 0}, {1, 1, 1}, {0, 1, 0}},
	"fig12":  {{1, 0, 0}, {1, 1, 1}, {0, 0, 1}},
	"fig13":  {{1, 1, 1, 1}, {0, 0, 1, 0}},
	"fig14":  {{0, 0, 1, 0}, {1, 1, 1, 1}},
	"fig15":  {{0, 1, 1}, {1, 1, 1}},
	"fig16":  {{1, 0, 1}, {1, 1, 1}},
	"fig17":  {{0, 1, 0}, {1, 1, 1}, {0, 1, 0}},
	"fig18":  {{1, 1, 1}, {0, 1, 1}},
	"fige01": {{0, 1, 1}, {1, 1, 0}},
	"fige02": {{1, 1}, {1, 1}},
	"fige03": {{1, 1, 0}, {0, 1, 1}},
	"fige04": {{0, 1, 0}, {1, 1, 1}},
	"fige05": {{1, 1, 1}, {0, 0, 1}},
	"fige06": {{1, 1, 1, 1}},
	"fige07": {{0, 0, 1}, {1, 1, 1}},
}

var figureNames = map[FigureType]string{
	"fig01":  "T alargada",
	"fig02":  "Z alargada",
	"fig03":  "Z alargada invertida",
	"fig04":  "Escalera",
	"fig05":  "Linea de 5",
	"fig06":  "Esquina",
	"fig07":  "L invertida de cuatro casillas",
	"fig08":  "L de cuatro casillas",
	"fig09":  "T con casilla extra derecha",
	"fig10":  "S invertida",
	"fig11":  "T con casilla extra izquierda",
	"fig12":  "S",
	"fig13":  "L invertida de tres casillas con casilla extra abajo",
	"fig14":  "L de tres casillas con casilla extra abajo",
	"fig15":  "Cuadrado con casilla extra izquierda",
	"fig16":  "C",
	"fig17":  "Cruz",
	"fig18":  "Cuadrado con casilla extra derecha",
	"fige01": "Z invertida",
	"fige02": "Cuadrado",
	"fige03": "Z",
	"fige04": "T",
	"fige05": "L invertida de tres casillas",
	"fige06": "Linea de 4",
	"fige07": "L de tres casillas",
}

// DisplayName returns the player-facing card name.
func (t FigureType) DisplayName() string {
	return figureNames[t]
}

// rotate returns s rotated 90 degrees counterclockwise.
func rotate(s Shape) Shape {
	rows, cols := len(s), len(s[0])
	out := make(Shape, cols)
	for i := range out {
		out[i] = make([]int, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[cols-1-x][y] = s[y][x]
		}
	}
	return out
}

// rotationsOf returns the shape's four quarter-turn rotations, unrotated first.
func rotationsOf(s Shape) []Shape {
	rots := make([]Shape, 0, 4)
	cur := s
	for i := 0; i < 4; i++ {
		rots = append(rots, cur)
		cur = rotate(cur)
	}
	return rots
}

func cellCount(s Shape) int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			n += v
		}
	}
	return n
}

func shapesEqual(a, b Shape) bool {
	if len(a) != len(b) || len(a[0]) != len(b[0]) {
		return false
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
