package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"atelier_noiva/internal/domain/entities"
	mock_interfaces "atelier_noiva/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotePaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TotalCents: 90000}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"installments":1}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("quote repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("amount pinned to persisted total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", BrideName: "Ana", TotalCents: 94500}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["transaction_amount"] != 945.0 {
					t.Fatalf("expected amount 945.0, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuotePayment{})).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				if p.ID != "mp-1" || p.QuoteID != "q-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("expected aprovado, got %s", p.Status)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1.0}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("expected mp-1, got %s", res.ID)
		}
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TotalCents: 90000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("mp down"))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "mp down" {
			t.Fatalf("expected mp down error, got %v", err)
		}
	})

	t.Run("mock mode skips gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quotes, gateway)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TotalCents: 90000}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				if p.ID == "" {
					t.Fatalf("expected synthesized payment id")
				}
				if p.ProviderPayload["status"] != "approved" {
					t.Fatalf("expected approved mock response, got %+v", p.ProviderPayload)
				}
				return p, nil
			},
		)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotePaymentUseCase_ListByQuoteID(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil)
		_, err := uc.ListByQuoteID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{{ID: "p-1"}}, nil)

		res, err := uc.ListByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
