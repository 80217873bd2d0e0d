package authz

import (
	"context"
	"errors"
	"testing"
)

func TestRequireOwner(t *testing.T) {
	owners := map[string]string{
		"res-1": "user-a",
	}
	load := func(_ context.Context, id string) (string, error) {
		owner, ok := owners[id]
		if !ok {
			return "", errors.New("no such resource")
		}
		return owner, nil
	}

	ctx := context.Background()

	if err := RequireOwner(ctx, load, "res-1", "user-a"); err != nil {
		t.Fatalf("owner should pass, got %v", err)
	}

	if err := RequireOwner(ctx, load, "res-1", "user-b"); err != ErrForbidden {
		t.Fatalf("non-owner: expected ErrForbidden, got %v", err)
	}

	// recurso inexistente: 404 antes que 403, incluso para no-dueños
	if err := RequireOwner(ctx, load, "res-missing", "user-b"); err != ErrNotFound {
		t.Fatalf("missing resource: expected ErrNotFound, got %v", err)
	}

	if err := RequireOwner(ctx, load, "res-1", ""); err != ErrForbidden {
		t.Fatalf("empty actor: expected ErrForbidden, got %v", err)
	}
}
