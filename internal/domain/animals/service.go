package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create existe para el seed/admin; no hay endpoint público de alta.
func (s *Service) Create(ctx context.Context, a Animal) (Animal, error) {
	if strings.TrimSpace(a.Name) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// nil = no tocar (update parcial)
	Name    *string
	Genus   *string
	Species *string
	GName   *string
	Image   *string
	Kingdom *string
	Phylum  *string
	Order   *string
	Family  *string
	Cls     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, ErrNotFound
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&a.Name, in.Name)
	apply(&a.Genus, in.Genus)
	apply(&a.Species, in.Species)
	apply(&a.GName, in.GName)
	apply(&a.Image, in.Image)
	apply(&a.Kingdom, in.Kingdom)
	apply(&a.Phylum, in.Phylum)
	apply(&a.Order, in.Order)
	apply(&a.Family, in.Family)
	apply(&a.Cls, in.Cls)

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Summary es la vista mínima que enriquece otros recursos.
type Summary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

func (a Animal) Summary() Summary {
	return Summary{ID: a.ID, Name: a.Name, Species: a.Species}
}
