package auth

// Claims representa la identidad extraída del token.
// El único claim que emitimos es el user id.
type Claims struct {
	UserID string
}
