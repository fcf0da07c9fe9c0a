// internal/handlers/ws_codes.go
package handlers

import "github.com/coder/websocket"

// Custom WebSocket close codes used by the game socket handler. These give
// clients a more specific reason for closure than the standard codes.
const (
	PlayerNotInGameClose     websocket.StatusCode = 4003 // Connecting player is not seated in the game.
	GameNotFoundClose        websocket.StatusCode = 4004 // Target game ID does not exist.
	DuplicateConnectionClose websocket.StatusCode = 4005 // Player opened the game in another tab.
)
