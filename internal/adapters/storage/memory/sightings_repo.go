package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"faunagram/internal/domain/sightings"
)

type sightingRepo struct {
	mu   sync.RWMutex
	byID map[string]sightings.Sighting
}

func NewSightingRepo() sightings.Repository {
	return &sightingRepo{
		byID: make(map[string]sightings.Sighting),
	}
}

func (r *sightingRepo) Create(ctx context.Context, s sightings.Sighting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sighting id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("sighting already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sightingRepo) GetByID(ctx context.Context, id string) (sightings.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sightings.Sighting{}, ErrNotFound
	}
	return s, nil
}

func (r *sightingRepo) List(ctx context.Context) ([]sightings.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sightings.Sighting, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	// más recientes primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *sightingRepo) Update(ctx context.Context, s sightings.Sighting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sightingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
