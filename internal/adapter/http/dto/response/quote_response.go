package response

import (
	"time"

	"atelier_noiva/internal/domain/entities"
)

type QuoteResponse struct {
	ID              string              `json:"id"`
	QuoteID         string              `json:"quote_id"`
	BrideName       string              `json:"bride_name"`
	CPF             string              `json:"cpf"`
	Phone           string              `json:"phone"`
	EventDate       string              `json:"event_date"`
	Notes           string              `json:"notes,omitempty"`
	Lines           []QuoteLineResponse `json:"lines"`
	PaymentMethod   string              `json:"payment_method"`
	Installments    int                 `json:"installments,omitempty"`
	DiscountPercent float64             `json:"discount_percent"`
	Subtotal        float64             `json:"subtotal"`
	Discount        float64             `json:"discount"`
	Total           float64             `json:"total"`
	Installment     float64             `json:"installment,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		QuoteID:         q.ID,
		BrideName:       q.BrideName,
		CPF:             q.CPF,
		Phone:           q.Phone,
		EventDate:       q.EventDate.Format("2006-01-02"),
		Notes:           q.Notes,
		Lines:           FromQuoteLines(q.Lines),
		PaymentMethod:   string(q.Payment.Method),
		Installments:    q.Payment.Installments,
		DiscountPercent: q.Payment.DiscountPercent,
		Subtotal:        reais(q.SubtotalCents),
		Discount:        reais(q.DiscountCents),
		Total:           reais(q.TotalCents),
		Installment:     reais(q.InstallmentCents),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
