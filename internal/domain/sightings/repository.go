package sightings

import "context"

type Repository interface {
	Create(ctx context.Context, s Sighting) error
	GetByID(ctx context.Context, id string) (Sighting, error)
	// List devuelve todos, más recientes primero.
	List(ctx context.Context) ([]Sighting, error)
	Update(ctx context.Context, s Sighting) error
	Delete(ctx context.Context, id string) error
}
