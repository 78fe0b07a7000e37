package session

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfwise/shelfwise/pkg/enums"
	"github.com/shelfwise/shelfwise/pkg/models"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Current(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on empty store, got %v", err)
	}

	user := &models.User{ID: "u1", Email: "a@b.com", Role: enums.RoleAdmin}
	if err := store.Save(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got.ID != "u1" || got.Role != enums.RoleAdmin {
		t.Fatalf("unexpected session user %+v", got)
	}

	// Mutating the returned snapshot must not leak into the slot.
	got.Email = "tampered@b.com"
	again, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if again.Email != "a@b.com" {
		t.Fatalf("slot should hold a copy, got %q", again.Email)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Current(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}
