package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrInvalidDraftID    = errors.New("invalid draft id")
	ErrOutOfStock        = errors.New("product out of stock")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
)

// IDraftUseCase is the quote line builder: it accumulates selected catalog
// items into a draft, enforcing product availability on every mutation.
//
// Stock is always checked against the live catalog at call time, never a
// cached copy, so catalog edits between calls immediately tighten (or relax)
// the ceiling. Lines keep insertion order for display and document export.

type IDraftUseCase interface {
	Open(ctx context.Context) (entities.Draft, error)
	Get(ctx context.Context, draftID string) (entities.Draft, error)
	AddItem(ctx context.Context, draftID, itemID string) (entities.Draft, error)
	SetQuantity(ctx context.Context, draftID, itemID string, quantity int) (entities.Draft, error)
	RemoveItem(ctx context.Context, draftID, itemID string) (entities.Draft, error)
	Preview(ctx context.Context, draftID string, terms entities.PaymentTerms) (PricingTotals, error)
	Discard(ctx context.Context, draftID string) error
}

type DraftUseCase struct {
	drafts  interfaces.IDraftStore
	catalog interfaces.ICatalogRepository
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(drafts interfaces.IDraftStore, catalog interfaces.ICatalogRepository) *DraftUseCase {
	return &DraftUseCase{drafts: drafts, catalog: catalog}
}

func (u *DraftUseCase) Open(ctx context.Context) (entities.Draft, error) {
	now := time.Now().UTC()
	d := entities.Draft{
		ID:        uuid.NewString(),
		Lines:     []entities.QuoteLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.drafts.Put(ctx, d); err != nil {
		return entities.Draft{}, err
	}
	return d, nil
}

func (u *DraftUseCase) Get(ctx context.Context, draftID string) (entities.Draft, error) {
	return u.load(ctx, draftID)
}

// AddItem inserts a new line with quantity 1, or bumps an existing line by 1.
// Products with no stock fail with ErrOutOfStock; increments past the live
// stock fail with ErrInsufficientStock. The draft is unchanged on failure.
func (u *DraftUseCase) AddItem(ctx context.Context, draftID, itemID string) (entities.Draft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}

	item, err := u.liveItem(ctx, itemID)
	if err != nil {
		return entities.Draft{}, err
	}
	if item.IsProduct() && item.StockCount <= 0 {
		return entities.Draft{}, ErrOutOfStock
	}

	if idx := d.LineIndex(item.ID); idx >= 0 {
		next := d.Lines[idx].Quantity + 1
		if item.IsProduct() && next > item.StockCount {
			return entities.Draft{}, ErrInsufficientStock
		}
		d.Lines[idx].Quantity = next
	} else {
		d.Lines = append(d.Lines, entities.QuoteLine{
			ItemID:     item.ID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Category:   item.Category,
			Quantity:   1,
		})
	}

	return u.save(ctx, d)
}

// SetQuantity overwrites a line's quantity. Quantities below 1 are a silent
// no-op, as is targeting an item that is not selected.
func (u *DraftUseCase) SetQuantity(ctx context.Context, draftID, itemID string, quantity int) (entities.Draft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	if quantity < 1 {
		return d, nil
	}

	idx := d.LineIndex(strings.TrimSpace(itemID))
	if idx < 0 {
		return d, nil
	}

	item, err := u.liveItem(ctx, itemID)
	if err != nil {
		return entities.Draft{}, err
	}
	if item.IsProduct() && quantity > item.StockCount {
		return entities.Draft{}, ErrInsufficientStock
	}

	d.Lines[idx].Quantity = quantity
	return u.save(ctx, d)
}

// RemoveItem deletes the line unconditionally; absent ids are a no-op.
func (u *DraftUseCase) RemoveItem(ctx context.Context, draftID, itemID string) (entities.Draft, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}

	idx := d.LineIndex(strings.TrimSpace(itemID))
	if idx < 0 {
		return d, nil
	}

	d.Lines = append(d.Lines[:idx], d.Lines[idx+1:]...)
	return u.save(ctx, d)
}

func (u *DraftUseCase) Preview(ctx context.Context, draftID string, terms entities.PaymentTerms) (PricingTotals, error) {
	d, err := u.load(ctx, draftID)
	if err != nil {
		return PricingTotals{}, err
	}
	return ComputeTotals(d.Lines, terms), nil
}

func (u *DraftUseCase) Discard(ctx context.Context, draftID string) error {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return ErrInvalidDraftID
	}
	return u.drafts.Delete(ctx, draftID)
}

func (u *DraftUseCase) load(ctx context.Context, draftID string) (entities.Draft, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.Draft{}, ErrInvalidDraftID
	}

	d, err := u.drafts.Get(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.ID == "" {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *DraftUseCase) liveItem(ctx context.Context, itemID string) (entities.CatalogItem, error) {
	item, err := u.catalog.GetByID(ctx, strings.TrimSpace(itemID))
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		// Deleted from the catalog: no longer orderable.
		return entities.CatalogItem{}, ErrItemNotFound
	}
	return item, nil
}

func (u *DraftUseCase) save(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	d.UpdatedAt = time.Now().UTC()
	if err := u.drafts.Put(ctx, d); err != nil {
		return entities.Draft{}, err
	}
	return d, nil
}
