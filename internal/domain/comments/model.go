package comments

import (
	"errors"
	"strings"
	"time"
)

// TargetType etiqueta el commentable al que se ata un comentario.
// Es un set cerrado: cualquier otro tag se rechaza en el borde
// (crear o filtrar), no se acepta silenciosamente.
type TargetType string

const (
	TargetUser     TargetType = "User"
	TargetSighting TargetType = "Sighting"
	TargetComment  TargetType = "Comment"
)

var ErrUnknownTarget = errors.New("unknown commentable type")

// ParseTargetType valida estrictamente el tag.
func ParseTargetType(s string) (TargetType, error) {
	switch TargetType(strings.TrimSpace(s)) {
	case TargetUser:
		return TargetUser, nil
	case TargetSighting:
		return TargetSighting, nil
	case TargetComment:
		return TargetComment, nil
	default:
		return "", ErrUnknownTarget
	}
}

// Comment es un comentario sobre un User, un Sighting u otro Comment
// (los replies anidan vía TargetComment).
type Comment struct {
	ID              string
	Body            string
	CommentableType TargetType
	CommentableID   string
	UserID          string // dueño
	Username        string // override opcional para display; vacío = sin override
	CreatedAt       time.Time
}
