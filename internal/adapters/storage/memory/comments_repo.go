package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"faunagram/internal/domain/comments"
)

type commentRepo struct {
	mu   sync.RWMutex
	byID map[string]comments.Comment
}

func NewCommentRepo() comments.Repository {
	return &commentRepo{
		byID: make(map[string]comments.Comment),
	}
}

func (r *commentRepo) Create(ctx context.Context, c comments.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("comment id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("comment already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return comments.Comment{}, ErrNotFound
	}
	return c, nil
}

func matches(c comments.Comment, f comments.Filter) bool {
	if f.CommentableType != "" && c.CommentableType != f.CommentableType {
		return false
	}
	if f.CommentableID != "" && c.CommentableID != f.CommentableID {
		return false
	}
	return true
}

func (r *commentRepo) List(ctx context.Context, f comments.Filter) ([]comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]comments.Comment, 0)
	for _, c := range r.byID {
		if matches(c, f) {
			out = append(out, c)
		}
	}

	// más recientes primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *commentRepo) CountByTarget(ctx context.Context, t comments.TargetType, targetID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, c := range r.byID {
		if c.CommentableType == t && c.CommentableID == targetID {
			n++
		}
	}
	return n, nil
}

func (r *commentRepo) Update(ctx context.Context, c comments.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
