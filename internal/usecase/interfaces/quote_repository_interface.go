package interfaces

import (
	"context"

	"atelier_noiva/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quotes are append-only:
//   - Create persists a finalized quote and returns it unchanged.
//   - List returns quotes in creation order; unreadable stored items are
//     skipped (logged), never surfaced as an error.
//   - Delete is a no-op for absent ids.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
