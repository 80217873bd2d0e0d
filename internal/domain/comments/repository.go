package comments

import "context"

// Filter acota el listado general. Campos vacíos = sin filtro.
type Filter struct {
	CommentableType TargetType
	CommentableID   string
}

type Repository interface {
	Create(ctx context.Context, c Comment) error
	GetByID(ctx context.Context, id string) (Comment, error)
	// List devuelve los que matchean el filtro, más recientes primero.
	List(ctx context.Context, f Filter) ([]Comment, error)
	CountByTarget(ctx context.Context, t TargetType, targetID string) (int, error)
	Update(ctx context.Context, c Comment) error
	Delete(ctx context.Context, id string) error
}
