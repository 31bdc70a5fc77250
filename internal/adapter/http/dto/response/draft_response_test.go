package response

import (
	"testing"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase"
)

func TestFromDraft(t *testing.T) {
	d := entities.Draft{
		ID: "d-1",
		Lines: []entities.QuoteLine{
			{ItemID: "kit", Name: "Kit Noiva", PriceCents: 35000, Category: entities.ItemCategoryProduto, Quantity: 3},
			{ItemID: "vestido", Name: "Vestido", PriceCents: 250000, Category: entities.ItemCategoryServico, Quantity: 1},
		},
	}
	totals := usecase.PricingTotals{SubtotalCents: 355000, DiscountCents: 35500, TotalCents: 319500, InstallmentCents: 106500}

	resp := FromDraft(d, totals)

	if resp.ID != "d-1" {
		t.Fatalf("expected id d-1, got %s", resp.ID)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	if resp.Lines[0].Price != 350.0 {
		t.Fatalf("expected price 350.0, got %v", resp.Lines[0].Price)
	}
	if resp.Lines[0].LineTotal != 1050.0 {
		t.Fatalf("expected line total 1050.0, got %v", resp.Lines[0].LineTotal)
	}
	if resp.Totals.Subtotal != 3550.0 || resp.Totals.Total != 3195.0 {
		t.Fatalf("unexpected totals: %+v", resp.Totals)
	}
	if resp.Totals.Installment != 1065.0 {
		t.Fatalf("expected installment 1065.0, got %v", resp.Totals.Installment)
	}
}

func TestFromQuoteLines_Empty(t *testing.T) {
	out := FromQuoteLines(nil)
	if out == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected no lines, got %d", len(out))
	}
}
