package sightings

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

type CreateInput struct {
	Title    string
	Body     string
	AnimalID string
	Likes    int
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Sighting, error) {
	if strings.TrimSpace(userID) == "" {
		return Sighting{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.AnimalID) == "" {
		return Sighting{}, ErrInvalidInput
	}

	sg := Sighting{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Body:      in.Body,
		UserID:    userID,
		AnimalID:  strings.TrimSpace(in.AnimalID),
		Likes:     in.Likes,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, sg); err != nil {
		return Sighting{}, err
	}
	return sg, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Sighting, error) {
	sg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Sighting{}, ErrNotFound
	}
	return sg, nil
}

func (s *Service) List(ctx context.Context) ([]Sighting, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// nil = no tocar. UserID y AnimalID nunca se actualizan.
	Title *string
	Body  *string
	Likes *int
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Sighting, error) {
	sg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Sighting{}, ErrNotFound
	}

	if in.Title != nil {
		sg.Title = *in.Title
	}
	if in.Body != nil {
		sg.Body = *in.Body
	}
	if in.Likes != nil {
		sg.Likes = *in.Likes
	}

	if err := s.repo.Update(ctx, sg); err != nil {
		return Sighting{}, err
	}
	return sg, nil
}

// SetImage persiste la key de la imagen ya subida al bucket.
func (s *Service) SetImage(ctx context.Context, id, imagePath string) (Sighting, error) {
	sg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Sighting{}, ErrNotFound
	}

	sg.ImagePath = imagePath
	if err := s.repo.Update(ctx, sg); err != nil {
		return Sighting{}, err
	}
	return sg, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

// OwnerOf expone el dueño para el ownership guard.
func (s *Service) OwnerOf(ctx context.Context, id string) (string, error) {
	sg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return sg.UserID, nil
}
