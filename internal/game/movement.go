// internal/game/movement.go
package game

// MovementType identifies one of the movement card displacement patterns.
type MovementType string

const (
	MoveDiagonalTwo    MovementType = "mov01"
	MoveStraightTwo    MovementType = "mov02"
	MoveStraightOne    MovementType = "mov03"
	MoveDiagonalOne    MovementType = "mov04"
	MoveInvertedL      MovementType = "mov05"
	MoveL              MovementType = "mov06"
	MoveStraightToEdge MovementType = "mov07"
)

var movementTypes = []MovementType{
	MoveDiagonalTwo, MoveStraightTwo, MoveStraightOne, MoveDiagonalOne,
	MoveInvertedL, MoveL, MoveStraightToEdge,
}

var movementNames = map[MovementType]string{
	MoveDiagonalTwo:    "Diagonal dos casillas",
	MoveStraightTwo:    "Linea recta dos casillas",
	MoveStraightOne:    "Linea recta una casilla",
	MoveDiagonalOne:    "Diagonal una casilla",
	MoveInvertedL:      "L invertida",
	MoveL:              "L",
	MoveStraightToEdge: "Linea recta hasta el borde",
}

// DisplayName returns the player-facing card name.
func (t MovementType) DisplayName() string {
	return movementNames[t]
}

// The two knight-style cards accept exactly four displacement vectors each,
// mirrored between the cards.
var (
	invertedLVectors = [4][2]int{{-2, 1}, {2, -1}, {1, 2}, {-1, -2}}
	lVectors         = [4][2]int{{-2, -1}, {2, 1}, {-1, 2}, {1, -2}}
)

// ValidateMovement checks a proposed swap against a card's displacement rule.
// Origin and destination must be in bounds and the displacement must match
// exactly.
func ValidateMovement(t MovementType, origin, destination Position) error {
	if !inBounds(origin) {
		return ErrOriginOutOfBounds
	}
	if !inBounds(destination) {
		return ErrDestinationOutOfBounds
	}
	if !movementAllowed(t, origin, destination) {
		return ErrInvalidMovement
	}
	return nil
}

func movementAllowed(t MovementType, origin, destination Position) bool {
	dx := abs(origin.X - destination.X)
	dy := abs(origin.Y - destination.Y)

	switch t {
	case MoveDiagonalTwo:
		return dx == 2 && dy == 2
	case MoveStraightTwo:
		return (dx == 0 && dy == 2) || (dx == 2 && dy == 0)
	case MoveStraightOne:
		return (dx == 0 && dy == 1) || (dx == 1 && dy == 0)
	case MoveDiagonalOne:
		return dx == 1 && dy == 1
	case MoveInvertedL:
		return vectorMatch(origin, destination, invertedLVectors)
	case MoveL:
		return vectorMatch(origin, destination, lVectors)
	case MoveStraightToEdge:
		// Slide along one axis until a board edge; the other axis is fixed.
		if dx == 0 && (destination.Y == 0 || destination.Y == BoardSide-1) {
			return true
		}
		if dy == 0 && (destination.X == 0 || destination.X == BoardSide-1) {
			return true
		}
		return false
	}
	return false
}

func vectorMatch(origin, destination Position, vectors [4][2]int) bool {
	for _, v := range vectors {
		if origin.X+v[0] == destination.X && origin.Y+v[1] == destination.Y {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
