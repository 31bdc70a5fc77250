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
	ErrItemNotFound        = errors.New("catalog item not found")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidItemName     = errors.New("invalid item name")
	ErrInvalidItemPrice    = errors.New("invalid item price")
	ErrInvalidItemCategory = errors.New("invalid item category")
	ErrInvalidItemStock    = errors.New("invalid item stock")
)

// CatalogItemInput carries the caller-supplied fields for create/update.
type CatalogItemInput struct {
	Name       string
	PriceCents int64
	Category   entities.ItemCategory
	StockCount int
}

// ICatalogUseCase exposes inventory management over the studio catalog.
//
// The quoting core treats the catalog as read-only; these operations exist for
// the estoque management screens.

type ICatalogUseCase interface {
	CreateItem(ctx context.Context, in CatalogItemInput) (entities.CatalogItem, error)
	UpdateItem(ctx context.Context, id string, in CatalogItemInput) (entities.CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (entities.CatalogItem, error)
	ListItems(ctx context.Context) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func validateItemInput(in *CatalogItemInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrInvalidItemName
	}
	if in.PriceCents < 0 {
		return ErrInvalidItemPrice
	}
	if !in.Category.Valid() {
		return ErrInvalidItemCategory
	}
	if in.StockCount < 0 {
		return ErrInvalidItemStock
	}
	// Services have unlimited availability; stock only counts for products.
	if in.Category == entities.ItemCategoryServico {
		in.StockCount = 0
	}
	return nil
}

func (u *CatalogUseCase) CreateItem(ctx context.Context, in CatalogItemInput) (entities.CatalogItem, error) {
	if err := validateItemInput(&in); err != nil {
		return entities.CatalogItem{}, err
	}

	now := time.Now().UTC()
	item := entities.CatalogItem{
		ID:         uuid.NewString(),
		Name:       in.Name,
		PriceCents: in.PriceCents,
		Category:   in.Category,
		StockCount: in.StockCount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, item)
}

func (u *CatalogUseCase) UpdateItem(ctx context.Context, id string, in CatalogItemInput) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidItemID
	}
	if err := validateItemInput(&in); err != nil {
		return entities.CatalogItem{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if existing.ID == "" {
		return entities.CatalogItem{}, ErrItemNotFound
	}

	existing.Name = in.Name
	existing.PriceCents = in.PriceCents
	existing.Category = in.Category
	existing.StockCount = in.StockCount
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	// The conditional write reports a concurrent delete as a zero value.
	if updated.ID == "" {
		return entities.CatalogItem{}, ErrItemNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteItem(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}
	return u.repo.Delete(ctx, id)
}

func (u *CatalogUseCase) GetItem(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrItemNotFound
	}
	return item, nil
}

func (u *CatalogUseCase) ListItems(ctx context.Context) ([]entities.CatalogItem, error) {
	return u.repo.List(ctx)
}
