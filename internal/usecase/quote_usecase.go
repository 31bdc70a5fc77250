package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrQuoteValidation = errors.New("quote validation failed")
)

// QuoteInput carries the customer/event fields required at finalize time.
type QuoteInput struct {
	BrideName string
	CPF       string
	Phone     string
	EventDate time.Time
	Notes     string
	Payment   entities.PaymentTerms
}

// IQuoteUseCase exposes the quote lifecycle after the draft stage.
//
// Finalize validates the customer fields and the draft, re-checks product
// stock against the live catalog immediately before committing, prices the
// selection, persists the quote and consumes product stock. Saved quotes are
// immutable; Remove is the only follow-up mutation.

type IQuoteUseCase interface {
	Finalize(ctx context.Context, draftID string, in QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Remove(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	quotes  interfaces.IQuoteRepository
	drafts  interfaces.IDraftStore
	catalog interfaces.ICatalogRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, drafts interfaces.IDraftStore, catalog interfaces.ICatalogRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, drafts: drafts, catalog: catalog}
}

func (u *QuoteUseCase) Finalize(ctx context.Context, draftID string, in QuoteInput) (entities.Quote, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.Quote{}, ErrInvalidDraftID
	}

	in.BrideName = strings.TrimSpace(in.BrideName)
	in.CPF = strings.TrimSpace(in.CPF)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.BrideName == "" || in.CPF == "" || in.Phone == "" || in.EventDate.IsZero() {
		return entities.Quote{}, ErrQuoteValidation
	}
	if !in.Payment.Method.Valid() {
		return entities.Quote{}, ErrQuoteValidation
	}
	if in.Payment.Method == entities.PaymentMethodCartao && in.Payment.Installments < 1 {
		in.Payment.Installments = 1
	}

	d, err := u.drafts.Get(ctx, draftID)
	if err != nil {
		return entities.Quote{}, err
	}
	if d.ID == "" {
		return entities.Quote{}, ErrDraftNotFound
	}
	if len(d.Lines) == 0 {
		return entities.Quote{}, ErrQuoteValidation
	}

	// Stale-read guard: the draft may be older than the latest catalog edits,
	// so product stock is re-validated right before committing.
	for _, l := range d.Lines {
		if l.Category != entities.ItemCategoryProduto {
			continue
		}
		item, err := u.catalog.GetByID(ctx, l.ItemID)
		if err != nil {
			return entities.Quote{}, err
		}
		if item.ID == "" {
			return entities.Quote{}, ErrItemNotFound
		}
		if l.Quantity > item.StockCount {
			return entities.Quote{}, ErrInsufficientStock
		}
	}

	// Consume stock first; the conditional update is the authoritative check.
	consumed := make([]entities.QuoteLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.Category != entities.ItemCategoryProduto {
			continue
		}
		updated, err := u.catalog.DecrementStock(ctx, l.ItemID, l.Quantity)
		if err != nil {
			u.restoreStock(ctx, consumed)
			return entities.Quote{}, err
		}
		if updated.ID == "" {
			u.restoreStock(ctx, consumed)
			return entities.Quote{}, ErrInsufficientStock
		}
		consumed = append(consumed, l)
	}

	totals := ComputeTotals(d.Lines, in.Payment)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:               strconv.FormatInt(now.UnixMilli(), 10),
		BrideName:        in.BrideName,
		CPF:              in.CPF,
		Phone:            in.Phone,
		EventDate:        in.EventDate,
		Notes:            in.Notes,
		Lines:            d.Lines,
		Payment:          in.Payment,
		SubtotalCents:    totals.SubtotalCents,
		DiscountCents:    totals.DiscountCents,
		TotalCents:       totals.TotalCents,
		InstallmentCents: totals.InstallmentCents,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		u.restoreStock(ctx, consumed)
		return entities.Quote{}, err
	}

	if err := u.drafts.Delete(ctx, draftID); err != nil {
		log.Printf("[quote][usecase] draft cleanup failed draft_id=%s err=%v", draftID, err)
	}
	return created, nil
}

// restoreStock puts back quantities consumed by a finalize that later failed.
func (u *QuoteUseCase) restoreStock(ctx context.Context, lines []entities.QuoteLine) {
	for _, l := range lines {
		if _, err := u.catalog.DecrementStock(ctx, l.ItemID, -l.Quantity); err != nil {
			log.Printf("[quote][usecase] stock restore failed item_id=%s qty=%d err=%v", l.ItemID, l.Quantity, err)
		}
	}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.quotes.List(ctx)
}

func (u *QuoteUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return u.quotes.Delete(ctx, id)
}
