// internal/handlers/utils_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingsoft-famaf/switcher/internal/game"
	"github.com/ingsoft-famaf/switcher/internal/room"
)

func TestExtractCookieToken(t *testing.T) {
	header := "foo=bar; session=abc123; other=x"
	assert.Equal(t, "abc123", extractCookieToken(header, "session"))
	assert.Equal(t, "bar", extractCookieToken(header, "foo"))
	assert.Equal(t, "x", extractCookieToken(header, "other"))
	assert.Equal(t, "", extractCookieToken(header, "missing"))
	assert.Equal(t, "", extractCookieToken("", "session"))
}

func TestWriteGameErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", game.ErrGameNotFound, http.StatusNotFound, "El juego no existe."},
		{"forbidden", game.ErrNotPlayersTurn, http.StatusForbidden, "No es el turno del jugador."},
		{"invalid", game.ErrFigureOutOfBounds, http.StatusBadRequest, "Posicion fuera del tablero"},
		{"room error", room.ErrRoomFull, http.StatusForbidden, "La sala está llena."},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeGameError(rr, tc.err)
			assert.Equal(t, tc.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.detail)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestValidateNameField(t *testing.T) {
	assert.Empty(t, validateNameField("username", "ana"))
	assert.Empty(t, validateNameField("username", "Jugador 42"))

	assert.Contains(t, validateNameField("username", ""), "longitud")
	assert.Contains(t, validateNameField("username", strings.Repeat("a", 33)), "longitud")
	assert.Contains(t, validateNameField("username", "niño"), "caracteres no permitidos")
	assert.Contains(t, validateNameField("username", "   "), "espacios en blanco")
	assert.Contains(t, validateNameField("roomName", "a    b"), "espacios consecutivos")

	// The field name is interpolated into the message.
	assert.Contains(t, validateNameField("roomName", ""), "roomName")
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, validatePassword(""))
	assert.Empty(t, validatePassword("clave123"))
	assert.Contains(t, validatePassword(strings.Repeat("a", 17)), "longitud")
	assert.Contains(t, validatePassword("con espacio"), "caracteres no permitidos")
	assert.Contains(t, validatePassword("acento-ñ"), "caracteres no permitidos")
}
