package request

import (
	"errors"
	"testing"

	"atelier_noiva/internal/domain/entities"
)

func TestCatalogItemRequest_ToInput(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		r := CatalogItemRequest{Name: "   ", Price: 100, Category: "produto"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidItemPayload) {
			t.Fatalf("expected ErrInvalidItemPayload, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		r := CatalogItemRequest{Name: "Véu", Price: -1, Category: "produto"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidItemPayload) {
			t.Fatalf("expected ErrInvalidItemPayload, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		r := CatalogItemRequest{Name: "Véu", Price: 100, Category: "aluguel"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidItemPayload) {
			t.Fatalf("expected ErrInvalidItemPayload, got %v", err)
		}
	})

	t.Run("price converts to cents", func(t *testing.T) {
		r := CatalogItemRequest{Name: " Kit Noiva ", Price: 350.00, Category: " Produto ", Stock: 15}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Name != "Kit Noiva" {
			t.Fatalf("expected trimmed name, got %q", in.Name)
		}
		if in.PriceCents != 35000 {
			t.Fatalf("expected 35000 cents, got %d", in.PriceCents)
		}
		if in.Category != entities.ItemCategoryProduto {
			t.Fatalf("expected produto, got %s", in.Category)
		}
	})

	t.Run("fractional reais round to the cent", func(t *testing.T) {
		r := CatalogItemRequest{Name: "Véu", Price: 19.995, Category: "produto"}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.PriceCents != 2000 {
			t.Fatalf("expected 2000 cents, got %d", in.PriceCents)
		}
	})
}
