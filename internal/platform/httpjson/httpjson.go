package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Helpers de respuesta JSON compartidos por los handlers.
// Antes cada módulo duplicaba su writeJSON; con cuatro módulos de recursos
// ya conviene el helper común.

var ErrInvalidJSON = errors.New("invalid json")

// WriteJSON serializa v con el status dado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError escribe el envelope uniforme de error: {"errors": msg}.
// Siempre JSON parseable, nunca HTML ni stack traces.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"errors": msg})
}

// Decode parsea el body JSON del request en dst.
// Body vacío también es ErrInvalidJSON: los handlers que aceptan
// body opcional deben chequear antes.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
