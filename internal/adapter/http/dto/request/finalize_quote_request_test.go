package request

import (
	"errors"
	"testing"

	"atelier_noiva/internal/domain/entities"
)

func TestFinalizeQuoteRequest_ToInput(t *testing.T) {
	base := FinalizeQuoteRequest{
		BrideName:       " Ana Souza ",
		CPF:             "123.456.789-00",
		Phone:           "(11) 98888-7777",
		EventDate:       "2026-10-17",
		PaymentMethod:   "Cartao",
		Installments:    3,
		DiscountPercent: 10,
	}

	t.Run("valid payload", func(t *testing.T) {
		in, err := base.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.BrideName != "Ana Souza" {
			t.Fatalf("expected trimmed name, got %q", in.BrideName)
		}
		if in.EventDate.Year() != 2026 || in.EventDate.Month() != 10 || in.EventDate.Day() != 17 {
			t.Fatalf("unexpected event date: %v", in.EventDate)
		}
		if in.Payment.Method != entities.PaymentMethodCartao || in.Payment.Installments != 3 {
			t.Fatalf("unexpected payment terms: %+v", in.Payment)
		}
	})

	t.Run("wrong date format", func(t *testing.T) {
		r := base
		r.EventDate = "17/10/2026"
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidFinalizePayload) {
			t.Fatalf("expected ErrInvalidFinalizePayload, got %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		r := base
		r.PaymentMethod = "cheque"
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidFinalizePayload) {
			t.Fatalf("expected ErrInvalidFinalizePayload, got %v", err)
		}
	})
}
