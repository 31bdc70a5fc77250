package interfaces

import (
	"context"

	"atelier_noiva/internal/domain/entities"
)

// IDraftStore holds in-progress quote drafts for the current session.
//
// Get returns the zero value when the id is unknown; Delete is a no-op for
// absent ids. The store is dumb storage: all stock validation happens in the
// draft use case against the live catalog.

type IDraftStore interface {
	Put(ctx context.Context, d entities.Draft) error
	Get(ctx context.Context, id string) (entities.Draft, error)
	Delete(ctx context.Context, id string) error
}
