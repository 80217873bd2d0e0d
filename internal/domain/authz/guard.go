package authz

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// OwnerLoader resuelve el user id dueño de un recurso.
// Cada módulo expone el suyo (sightings.OwnerOf, comments.OwnerOf, etc.);
// para users el loader carga la cuenta y devuelve su propio id, así el
// guard también da 404 para cuentas inexistentes.
type OwnerLoader func(ctx context.Context, resourceID string) (string, error)

// RequireOwner es el ownership guard único para mutaciones.
// Orden de chequeo fijo: recurso inexistente => ErrNotFound (nunca 403),
// dueño distinto => ErrForbidden. Corre estrictamente antes de cualquier
// escritura; el ownership no es transferible ni se re-evalúa a mitad
// de operación.
func RequireOwner(ctx context.Context, load OwnerLoader, resourceID, actorID string) error {
	ownerID, err := load(ctx, resourceID)
	if err != nil {
		return ErrNotFound
	}
	if strings.TrimSpace(actorID) == "" || ownerID != actorID {
		return ErrForbidden
	}
	return nil
}
