package repository

import (
	"context"
	"testing"

	"atelier_noiva/internal/domain/entities"
)

func TestDraftMemoryStore_PutGet(t *testing.T) {
	store := NewDraftMemoryStore()
	ctx := context.Background()

	d := entities.Draft{ID: "d-1", Lines: []entities.QuoteLine{{ItemID: "kit", Quantity: 2}}}
	if err := store.Put(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "d-1" || len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected draft: %+v", got)
	}
}

func TestDraftMemoryStore_GetUnknownReturnsZeroValue(t *testing.T) {
	store := NewDraftMemoryStore()

	got, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestDraftMemoryStore_CopiesLines(t *testing.T) {
	store := NewDraftMemoryStore()
	ctx := context.Background()

	d := entities.Draft{ID: "d-1", Lines: []entities.QuoteLine{{ItemID: "kit", Quantity: 2}}}
	if err := store.Put(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's slice must not leak into the store.
	d.Lines[0].Quantity = 99

	got, _ := store.Get(ctx, "d-1")
	if got.Lines[0].Quantity != 2 {
		t.Fatalf("expected stored quantity 2, got %d", got.Lines[0].Quantity)
	}

	// And mutating a returned copy must not affect later reads.
	got.Lines[0].Quantity = 50
	again, _ := store.Get(ctx, "d-1")
	if again.Lines[0].Quantity != 2 {
		t.Fatalf("expected stored quantity 2, got %d", again.Lines[0].Quantity)
	}
}

func TestDraftMemoryStore_Delete(t *testing.T) {
	store := NewDraftMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, entities.Draft{ID: "d-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(ctx, "d-1")
	if got.ID != "" {
		t.Fatalf("expected draft gone, got %+v", got)
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
