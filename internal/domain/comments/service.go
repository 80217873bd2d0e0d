package comments

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
	Body            string
	CommentableType string
	CommentableID   string
	Username        string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Comment, error) {
	if strings.TrimSpace(userID) == "" {
		return Comment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Body) == "" ||
		strings.TrimSpace(in.CommentableType) == "" ||
		strings.TrimSpace(in.CommentableID) == "" {
		return Comment{}, ErrInvalidInput
	}

	target, err := ParseTargetType(in.CommentableType)
	if err != nil {
		return Comment{}, err
	}

	c := Comment{
		ID:              uuid.NewString(),
		Body:            in.Body,
		CommentableType: target,
		CommentableID:   strings.TrimSpace(in.CommentableID),
		UserID:          userID,
		Username:        strings.TrimSpace(in.Username),
		CreatedAt:       s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Comment{}, ErrNotFound
	}
	return c, nil
}

// List filtra por tipo y/o id de commentable. El tipo, si viene,
// se valida contra el set cerrado.
func (s *Service) List(ctx context.Context, rawType, targetID string) ([]Comment, error) {
	var f Filter

	if strings.TrimSpace(rawType) != "" {
		t, err := ParseTargetType(rawType)
		if err != nil {
			return nil, err
		}
		f.CommentableType = t
	}
	f.CommentableID = strings.TrimSpace(targetID)

	return s.repo.List(ctx, f)
}

// ListByTarget lista los comentarios de un commentable puntual.
func (s *Service) ListByTarget(ctx context.Context, t TargetType, targetID string) ([]Comment, error) {
	return s.repo.List(ctx, Filter{CommentableType: t, CommentableID: targetID})
}

func (s *Service) CountByTarget(ctx context.Context, t TargetType, targetID string) (int, error) {
	return s.repo.CountByTarget(ctx, t, targetID)
}

// UpdateBody reemplaza el body. El resto del comment (target, dueño,
// timestamps) es inmutable.
func (s *Service) UpdateBody(ctx context.Context, id, body string) (Comment, error) {
	if strings.TrimSpace(body) == "" {
		return Comment{}, ErrInvalidInput
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Comment{}, ErrNotFound
	}

	c.Body = body
	if err := s.repo.Update(ctx, c); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

// OwnerOf expone el dueño para el ownership guard.
func (s *Service) OwnerOf(ctx context.Context, id string) (string, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.UserID, nil
}
