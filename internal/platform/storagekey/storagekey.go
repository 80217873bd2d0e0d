package storagekey

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// New arma la key de storage para un binario subido:
// <id>_<millis>_<filename saneado>. El id y el timestamp hacen la
// colisión dentro del proceso efectivamente imposible.
func New(ownerID string, now time.Time, originalFilename string) string {
	return fmt.Sprintf("%s_%d_%s", ownerID, now.UnixMilli(), SanitizeFilename(originalFilename))
}

// SanitizeFilename trata el nombre original como input no confiable:
// se descarta cualquier componente de path y los caracteres fuera de
// [a-zA-Z0-9._-] se reemplazan por "_". Nunca devuelve vacío ni ".."-like.
func SanitizeFilename(name string) string {
	// filepath.Base corta separadores unix; los de windows se limpian abajo.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
