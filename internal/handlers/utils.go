package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ingsoft-famaf/switcher/internal/game"
)

// extractCookieToken extracts a named cookie value from a "Cookie" header, or returns empty if not found.
func extractCookieToken(cookieHeader, cookieName string) string {
	parts := strings.Split(cookieHeader, cookieName+"=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail answers with the error body clients expect: {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeGameError maps a rule violation to its HTTP status. Anything that is
// not a *game.Error surfaces as a 500.
func writeGameError(w http.ResponseWriter, err error) {
	var ge *game.Error
	if errors.As(err, &ge) {
		status := http.StatusBadRequest
		switch ge.Kind {
		case game.KindNotFound:
			status = http.StatusNotFound
		case game.KindForbidden:
			status = http.StatusForbidden
		}
		writeDetail(w, status, ge.Message)
		return
	}
	writeDetail(w, http.StatusInternalServerError, err.Error())
}

// validateNameField enforces the shared naming rules: 1 to 32 ascii
// characters, not only whitespace, at most 3 consecutive spaces. The field
// name is interpolated into the message.
func validateNameField(field, value string) string {
	if len(value) < 1 || len(value) > 32 {
		return "El " + field + " proporcionado no cumple con los requisitos de longitud permitidos."
	}
	for _, r := range value {
		if r > 127 {
			return "El " + field + " proporcionado contiene caracteres no permitidos."
		}
	}
	if strings.TrimSpace(value) == "" {
		return "El " + field + " proporcionado no puede contener solo espacios en blanco."
	}
	if strings.Contains(value, "    ") {
		return "El " + field + " proporcionado no puede contener más de 3 espacios consecutivos."
	}
	return ""
}

// validatePassword enforces the room password rules: when present, 1 to 16
// alphanumeric characters.
func validatePassword(value string) string {
	if value == "" {
		return ""
	}
	if len(value) > 16 {
		return "El password proporcionado no cumple con los requisitos de longitud permitidos."
	}
	for _, r := range value {
		isAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlnum {
			return "El password proporcionado contiene caracteres no permitidos."
		}
	}
	return ""
}
