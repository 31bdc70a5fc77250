package request

import (
	"errors"
	"strings"
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase"
)

var (
	ErrInvalidFinalizePayload = errors.New("invalid finalize payload")
)

// FinalizeQuoteRequest carries the customer/event/payment fields required to
// turn a draft into a persisted quote.
//
// EventDate uses the HTML date input format (2006-01-02), matching what the
// studio front-end sends.
type FinalizeQuoteRequest struct {
	BrideName       string  `json:"bride_name" binding:"required"`
	CPF             string  `json:"cpf" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	EventDate       string  `json:"event_date" binding:"required"`
	Notes           string  `json:"notes"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	Installments    int     `json:"installments"`
	DiscountPercent float64 `json:"discount_percent"`
}

func (r FinalizeQuoteRequest) ToInput() (usecase.QuoteInput, error) {
	eventDate, err := time.Parse("2006-01-02", strings.TrimSpace(r.EventDate))
	if err != nil {
		return usecase.QuoteInput{}, ErrInvalidFinalizePayload
	}

	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
	if !method.Valid() {
		return usecase.QuoteInput{}, ErrInvalidFinalizePayload
	}

	return usecase.QuoteInput{
		BrideName: strings.TrimSpace(r.BrideName),
		CPF:       strings.TrimSpace(r.CPF),
		Phone:     strings.TrimSpace(r.Phone),
		EventDate: eventDate,
		Notes:     strings.TrimSpace(r.Notes),
		Payment: entities.PaymentTerms{
			Method:          method,
			Installments:    r.Installments,
			DiscountPercent: r.DiscountPercent,
		},
	}, nil
}
