package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado que embebe el user id como único claim.
// Verify(Issue(id)) debe recuperar el mismo id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
