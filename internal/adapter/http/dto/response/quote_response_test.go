package response

import (
	"testing"
	"time"

	"atelier_noiva/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:        "1767225600000",
		BrideName: "Ana Souza",
		CPF:       "123.456.789-00",
		Phone:     "(11) 98888-7777",
		EventDate: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		Notes:     "Prova marcada",
		Lines: []entities.QuoteLine{
			{ItemID: "vestido", Name: "Vestido", PriceCents: 250000, Category: entities.ItemCategoryServico, Quantity: 1},
		},
		Payment:          entities.PaymentTerms{Method: entities.PaymentMethodCartao, Installments: 3, DiscountPercent: 10},
		SubtotalCents:    250000,
		DiscountCents:    25000,
		TotalCents:       225000,
		InstallmentCents: 75000,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	resp := FromQuote(q)

	if resp.ID != q.ID || resp.QuoteID != q.ID {
		t.Fatalf("expected both id fields set, got %+v", resp)
	}
	if resp.EventDate != "2026-10-17" {
		t.Fatalf("expected 2026-10-17, got %s", resp.EventDate)
	}
	if resp.Subtotal != 2500.0 || resp.Discount != 250.0 || resp.Total != 2250.0 {
		t.Fatalf("unexpected money fields: %+v", resp)
	}
	if resp.Installment != 750.0 || resp.Installments != 3 {
		t.Fatalf("unexpected installment fields: %+v", resp)
	}
	if resp.PaymentMethod != "cartao" {
		t.Fatalf("expected cartao, got %s", resp.PaymentMethod)
	}
}

func TestFromQuotes_Empty(t *testing.T) {
	out := FromQuotes(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}
