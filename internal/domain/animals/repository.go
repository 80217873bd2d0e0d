package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	// List devuelve todos, ordenados alfabéticamente por nombre.
	List(ctx context.Context) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
}
