package users

import "time"

// User es la identidad registrada en el sistema.
// PasswordDigest nunca se serializa hacia afuera; los handlers arman
// su propio response type sin ese campo.
type User struct {
	ID             string
	Username       string
	PasswordDigest string
	Name           string
	AvatarPath     string // key en el bucket (sin el prefijo "avatars/"); vacío = sin avatar
	CreatedAt      time.Time
}
