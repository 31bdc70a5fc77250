package response

import (
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase"
)

type QuoteLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type TotalsResponse struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	Installment float64 `json:"installment,omitempty"`
}

type DraftResponse struct {
	ID        string              `json:"id"`
	Lines     []QuoteLineResponse `json:"lines"`
	Totals    TotalsResponse      `json:"totals"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func FromQuoteLine(l entities.QuoteLine) QuoteLineResponse {
	return QuoteLineResponse{
		ItemID:    l.ItemID,
		Name:      l.Name,
		Price:     reais(l.PriceCents),
		Category:  string(l.Category),
		Quantity:  l.Quantity,
		LineTotal: reais(l.TotalCents()),
	}
}

func FromQuoteLines(lines []entities.QuoteLine) []QuoteLineResponse {
	out := make([]QuoteLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromQuoteLine(l))
	}
	return out
}

func FromTotals(t usecase.PricingTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:    reais(t.SubtotalCents),
		Discount:    reais(t.DiscountCents),
		Total:       reais(t.TotalCents),
		Installment: reais(t.InstallmentCents),
	}
}

func FromDraft(d entities.Draft, totals usecase.PricingTotals) DraftResponse {
	return DraftResponse{
		ID:        d.ID,
		Lines:     FromQuoteLines(d.Lines),
		Totals:    FromTotals(totals),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
