package comments

import (
	"context"
	"testing"
	"time"
)

// repo in-memory mínimo para testear el service sin adapters.
type fakeRepo struct {
	byID map[string]Comment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Comment{}}
}

func (r *fakeRepo) Create(_ context.Context, c Comment) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (Comment, error) {
	c, ok := r.byID[id]
	if !ok {
		return Comment{}, ErrNotFound
	}
	return c, nil
}

func (r *fakeRepo) List(_ context.Context, f Filter) ([]Comment, error) {
	out := make([]Comment, 0)
	for _, c := range r.byID {
		if f.CommentableType != "" && c.CommentableType != f.CommentableType {
			continue
		}
		if f.CommentableID != "" && c.CommentableID != f.CommentableID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepo) CountByTarget(ctx context.Context, t TargetType, targetID string) (int, error) {
	items, _ := r.List(ctx, Filter{CommentableType: t, CommentableID: targetID})
	return len(items), nil
}

func (r *fakeRepo) Update(_ context.Context, c Comment) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestParseTargetType_ClosedSet(t *testing.T) {
	for _, s := range []string{"User", "Sighting", "Comment"} {
		if _, err := ParseTargetType(s); err != nil {
			t.Fatalf("%s should be valid, got %v", s, err)
		}
	}
	for _, s := range []string{"", "user", "Animal", "Post", "sighting "} {
		if _, err := ParseTargetType(s); err != ErrUnknownTarget {
			t.Fatalf("%q should be rejected, got %v", s, err)
		}
	}
}

func TestCreate_RejectsUnknownTarget(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		Body:            "nice catch",
		CommentableType: "Animal",
		CommentableID:   "a-1",
	})
	if err != ErrUnknownTarget {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestCreate_RequiresFields(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := []CreateInput{
		{Body: "", CommentableType: "Sighting", CommentableID: "s-1"},
		{Body: "hi", CommentableType: "", CommentableID: "s-1"},
		{Body: "hi", CommentableType: "Sighting", CommentableID: ""},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), "user-1", in); err != ErrInvalidInput {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestList_RejectsUnknownTypeFilter(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.List(context.Background(), "Animal", ""); err != ErrUnknownTarget {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestUpdateBody_OnlyBodyChanges(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	c, err := svc.Create(context.Background(), "user-1", CreateInput{
		Body:            "original",
		CommentableType: "Comment",
		CommentableID:   "parent-1",
		Username:        "ana",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateBody(context.Background(), c.ID, "edited")
	if err != nil {
		t.Fatalf("UpdateBody: %v", err)
	}

	if updated.Body != "edited" {
		t.Fatalf("body not updated: %q", updated.Body)
	}
	if updated.CommentableType != c.CommentableType ||
		updated.CommentableID != c.CommentableID ||
		updated.UserID != c.UserID ||
		updated.Username != c.Username ||
		!updated.CreatedAt.Equal(c.CreatedAt) {
		t.Fatalf("immutable fields changed: %+v vs %+v", updated, c)
	}
}

func TestOwnerOf(t *testing.T) {
	svc := NewService(newFakeRepo())

	c, _ := svc.Create(context.Background(), "user-9", CreateInput{
		Body:            "x",
		CommentableType: "User",
		CommentableID:   "user-1",
	})

	owner, err := svc.OwnerOf(context.Background(), c.ID)
	if err != nil || owner != "user-9" {
		t.Fatalf("expected user-9, got %q err=%v", owner, err)
	}

	if _, err := svc.OwnerOf(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing comment")
	}
}
