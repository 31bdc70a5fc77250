package interfaces

import (
	"context"

	"atelier_noiva/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for CatalogItem.
//
// The quoting core only reads (List/GetByID); the inventory management
// surface owns creation, edits and removal. DecrementStock is the one write
// the quoting flow performs, at finalize, and must fail (zero-value return)
// when the remaining stock does not cover the requested quantity so a stale
// draft can never oversell a product.

type ICatalogRepository interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context) ([]entities.CatalogItem, error)
	Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, quantity int) (entities.CatalogItem, error)
}
