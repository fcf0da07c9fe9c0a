// internal/game/errors.go
package game

// ErrorKind classifies a rule violation so transport layers can map it to a
// status code without inspecting messages.
type ErrorKind int

const (
	// KindInvalid marks a malformed request (e.g. out-of-board coordinates).
	KindInvalid ErrorKind = iota
	// KindForbidden marks a precondition failure on otherwise valid input.
	KindForbidden
	// KindNotFound marks a missing game, room or player.
	KindNotFound
)

// Error is a rule violation carrying a player-facing message. Messages are
// stable strings clients render directly.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Forbidden builds a KindForbidden error.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Invalid builds a KindInvalid error.
func Invalid(msg string) *Error {
	return &Error{Kind: KindInvalid, Message: msg}
}

var (
	ErrGameNotFound   = NotFound("El juego no existe.")
	ErrPlayerNotFound = NotFound("El jugador no existe.")

	ErrNotPlayersTurn      = Forbidden("No es el turno del jugador.")
	ErrNotInGame           = Forbidden("El jugador no se encuentra en el juego.")
	ErrNotEnoughPlayers    = Forbidden("No hay suficientes jugadores para iniciar la partida.")
	ErrCardNotInGame       = Forbidden("La carta no existe en la partida.")
	ErrCardNotOwned        = Forbidden("La carta no pertenece al jugador.")
	ErrCardBlocked         = Forbidden("La carta esta bloqueada.")
	ErrTargetNotThreeCards = Forbidden("El jugador tiene menos de tres cartas de figura.")

	ErrFigureEmpty      = Forbidden("La figura no puede estar vacía.")
	ErrFigureMixedColor = Forbidden("La figura debe ser del mismo color.")
	ErrFigureProhibited = Forbidden("La figura no puede ser del color prohibido.")
	ErrFigureMismatch   = Forbidden("La figura no coincide con la carta.")
	ErrFigureBorder     = Forbidden("La figura tiene una ficha adyacente del mismo color.")

	ErrInvalidMovement      = Forbidden("Movimiento inválido.")
	ErrMovementCardNotFound = Forbidden("La carta de movimiento no existe.")
	ErrMovementCardNotOwned = Forbidden("El jugador no tiene la carta de movimiento.")
	ErrCardAlreadyPending   = Forbidden("La carta ya fue usada en un movimiento parcial.")
	ErrNoPendingMovement    = Forbidden("El jugador no ha realizado ningún movimiento.")

	ErrOriginOutOfBounds      = Invalid("Posicion de origen fuera del tablero")
	ErrDestinationOutOfBounds = Invalid("Posicion de destino fuera del tablero")
	ErrFigureOutOfBounds      = Invalid("Posicion fuera del tablero")
)
