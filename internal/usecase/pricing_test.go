package usecase

import (
	"testing"

	"atelier_noiva/internal/domain/entities"
)

func line(id string, cents int64, qty int, cat entities.ItemCategory) entities.QuoteLine {
	return entities.QuoteLine{ItemID: id, Name: id, PriceCents: cents, Category: cat, Quantity: qty}
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		got := ComputeTotals(nil, entities.PaymentTerms{Method: entities.PaymentMethodPix})
		if got.SubtotalCents != 0 || got.DiscountCents != 0 || got.TotalCents != 0 || got.InstallmentCents != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("subtotal multiplies price by quantity", func(t *testing.T) {
		lines := []entities.QuoteLine{
			line("kit", 35000, 3, entities.ItemCategoryProduto),
		}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodPix})
		if got.SubtotalCents != 105000 {
			t.Fatalf("expected subtotal 105000, got %d", got.SubtotalCents)
		}
		if got.TotalCents != 105000 {
			t.Fatalf("expected total 105000, got %d", got.TotalCents)
		}
	})

	t.Run("mixed services and products", func(t *testing.T) {
		lines := []entities.QuoteLine{
			line("vestido", 250000, 1, entities.ItemCategoryServico),
			line("veu", 15000, 2, entities.ItemCategoryProduto),
		}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodDinheiro})
		if got.SubtotalCents != 280000 {
			t.Fatalf("expected subtotal 280000, got %d", got.SubtotalCents)
		}
	})

	t.Run("percentage discount", func(t *testing.T) {
		lines := []entities.QuoteLine{line("a", 100000, 1, entities.ItemCategoryServico)}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodPix, DiscountPercent: 10})
		if got.DiscountCents != 10000 {
			t.Fatalf("expected discount 10000, got %d", got.DiscountCents)
		}
		if got.TotalCents != 90000 {
			t.Fatalf("expected total 90000, got %d", got.TotalCents)
		}
	})

	t.Run("discount rounds half up to the cent", func(t *testing.T) {
		lines := []entities.QuoteLine{line("a", 999, 1, entities.ItemCategoryServico)}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodPix, DiscountPercent: 12.5})
		// 999 * 0.125 = 124.875 -> 125
		if got.DiscountCents != 125 {
			t.Fatalf("expected discount 125, got %d", got.DiscountCents)
		}
	})

	t.Run("discount clamped below zero", func(t *testing.T) {
		lines := []entities.QuoteLine{line("a", 100000, 1, entities.ItemCategoryServico)}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodPix, DiscountPercent: -5})
		if got.DiscountCents != 0 || got.TotalCents != 100000 {
			t.Fatalf("expected no discount, got %+v", got)
		}
	})

	t.Run("discount clamped above hundred", func(t *testing.T) {
		lines := []entities.QuoteLine{line("a", 100000, 1, entities.ItemCategoryServico)}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodPix, DiscountPercent: 150})
		if got.DiscountCents != 100000 || got.TotalCents != 0 {
			t.Fatalf("expected full discount, got %+v", got)
		}
	})

	t.Run("installments only for cartao", func(t *testing.T) {
		lines := []entities.QuoteLine{line("a", 100000, 1, entities.ItemCategoryServico)}

		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodCartao, DiscountPercent: 10, Installments: 3})
		if got.InstallmentCents != 30000 {
			t.Fatalf("expected installment 30000, got %d", got.InstallmentCents)
		}

		got = ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodPix, DiscountPercent: 10, Installments: 3})
		if got.InstallmentCents != 0 {
			t.Fatalf("expected no installment for pix, got %d", got.InstallmentCents)
		}
	})

	t.Run("installment splits total not subtotal", func(t *testing.T) {
		lines := []entities.QuoteLine{line("a", 100000, 1, entities.ItemCategoryServico)}
		got := ComputeTotals(lines, entities.PaymentTerms{Method: entities.PaymentMethodCartao, DiscountPercent: 50, Installments: 4})
		if got.InstallmentCents != 12500 {
			t.Fatalf("expected installment 12500, got %d", got.InstallmentCents)
		}
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		lines := []entities.QuoteLine{
			line("a", 35000, 3, entities.ItemCategoryProduto),
			line("b", 250000, 1, entities.ItemCategoryServico),
		}
		terms := entities.PaymentTerms{Method: entities.PaymentMethodCartao, DiscountPercent: 7.5, Installments: 6}

		first := ComputeTotals(lines, terms)
		second := ComputeTotals(lines, terms)
		if first != second {
			t.Fatalf("expected identical totals, got %+v vs %+v", first, second)
		}
	})
}
