package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier_noiva/internal/domain/entities"
	mock_interfaces "atelier_noiva/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validQuoteInput() QuoteInput {
	return QuoteInput{
		BrideName: "Ana Souza",
		CPF:       "123.456.789-00",
		Phone:     "(11) 98888-7777",
		EventDate: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		Payment:   entities.PaymentTerms{Method: entities.PaymentMethodPix},
	}
}

func TestQuoteUseCase_Finalize(t *testing.T) {
	t.Run("invalid draft id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Finalize(context.Background(), "   ", validQuoteInput())
		if !errors.Is(err, ErrInvalidDraftID) {
			t.Fatalf("expected ErrInvalidDraftID, got %v", err)
		}
	})

	t.Run("missing customer fields", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		in := validQuoteInput()
		in.BrideName = "   "
		_, err := uc.Finalize(context.Background(), "d-1", in)
		if !errors.Is(err, ErrQuoteValidation) {
			t.Fatalf("expected ErrQuoteValidation, got %v", err)
		}
	})

	t.Run("missing event date", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		in := validQuoteInput()
		in.EventDate = time.Time{}
		_, err := uc.Finalize(context.Background(), "d-1", in)
		if !errors.Is(err, ErrQuoteValidation) {
			t.Fatalf("expected ErrQuoteValidation, got %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		in := validQuoteInput()
		in.Payment.Method = "cheque"
		_, err := uc.Finalize(context.Background(), "d-1", in)
		if !errors.Is(err, ErrQuoteValidation) {
			t.Fatalf("expected ErrQuoteValidation, got %v", err)
		}
	})

	t.Run("draft not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuoteUseCase(nil, drafts, nil)

		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(entities.Draft{}, nil)

		_, err := uc.Finalize(context.Background(), "d-1", validQuoteInput())
		if !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuoteUseCase(nil, drafts, nil)

		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(draftWith(), nil)

		_, err := uc.Finalize(context.Background(), "d-1", validQuoteInput())
		if !errors.Is(err, ErrQuoteValidation) {
			t.Fatalf("expected ErrQuoteValidation, got %v", err)
		}
	})

	t.Run("stale draft exceeds live stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(nil, drafts, catalog)

		d := draftWith(entities.QuoteLine{ItemID: "kit", PriceCents: 35000, Category: entities.ItemCategoryProduto, Quantity: 5})
		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(d, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "kit").Return(produto("kit", 35000, 2), nil)

		_, err := uc.Finalize(context.Background(), "d-1", validQuoteInput())
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("conditional decrement loses the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(nil, drafts, catalog)

		d := draftWith(entities.QuoteLine{ItemID: "kit", PriceCents: 35000, Category: entities.ItemCategoryProduto, Quantity: 2})
		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(d, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "kit").Return(produto("kit", 35000, 2), nil)
		catalog.EXPECT().DecrementStock(gomock.Any(), "kit", 2).Return(entities.CatalogItem{}, nil)

		_, err := uc.Finalize(context.Background(), "d-1", validQuoteInput())
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("save failure restores consumed stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(quotes, drafts, catalog)

		d := draftWith(entities.QuoteLine{ItemID: "kit", PriceCents: 35000, Category: entities.ItemCategoryProduto, Quantity: 2})
		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(d, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "kit").Return(produto("kit", 35000, 5), nil)
		catalog.EXPECT().DecrementStock(gomock.Any(), "kit", 2).Return(produto("kit", 35000, 3), nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))
		catalog.EXPECT().DecrementStock(gomock.Any(), "kit", -2).Return(produto("kit", 35000, 5), nil)

		_, err := uc.Finalize(context.Background(), "d-1", validQuoteInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success prices lines and consumes stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(quotes, drafts, catalog)

		d := draftWith(
			entities.QuoteLine{ItemID: "vestido", Name: "Vestido", PriceCents: 250000, Category: entities.ItemCategoryServico, Quantity: 1},
			entities.QuoteLine{ItemID: "kit", Name: "Kit Noiva", PriceCents: 35000, Category: entities.ItemCategoryProduto, Quantity: 3},
		)
		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(d, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "kit").Return(produto("kit", 35000, 15), nil)
		catalog.EXPECT().DecrementStock(gomock.Any(), "kit", 3).Return(produto("kit", 35000, 12), nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if q.SubtotalCents != 355000 {
					t.Fatalf("expected subtotal 355000, got %d", q.SubtotalCents)
				}
				if q.DiscountCents != 35500 || q.TotalCents != 319500 {
					t.Fatalf("unexpected totals: %+v", q)
				}
				if len(q.Lines) != 2 {
					t.Fatalf("expected 2 lines, got %d", len(q.Lines))
				}
				return q, nil
			},
		)
		drafts.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

		in := validQuoteInput()
		in.Payment.DiscountPercent = 10

		res, err := uc.Finalize(context.Background(), "d-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalCents != 319500 {
			t.Fatalf("expected total 319500, got %d", res.TotalCents)
		}
	})

	t.Run("cartao defaults to single installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		drafts := mock_interfaces.NewMockIDraftStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteUseCase(quotes, drafts, catalog)

		d := draftWith(entities.QuoteLine{ItemID: "vestido", PriceCents: 250000, Category: entities.ItemCategoryServico, Quantity: 1})
		drafts.EXPECT().Get(gomock.Any(), "d-1").Return(d, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Payment.Installments != 1 {
					t.Fatalf("expected 1 installment, got %d", q.Payment.Installments)
				}
				if q.InstallmentCents != q.TotalCents {
					t.Fatalf("expected installment == total, got %d vs %d", q.InstallmentCents, q.TotalCents)
				}
				return q, nil
			},
		)
		drafts.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

		in := validQuoteInput()
		in.Payment = entities.PaymentTerms{Method: entities.PaymentMethodCartao, Installments: 0}

		_, err := uc.Finalize(context.Background(), "d-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found maps zero value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Remove(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		if err := uc.Remove(context.Background(), ""); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("absent id is a repo no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quotes, nil, nil)

		quotes.EXPECT().Delete(gomock.Any(), "missing").Return(nil)

		if err := uc.Remove(context.Background(), "missing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
