package repository

import (
	"context"
	"sync"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase/interfaces"
)

// DraftMemoryStore keeps in-progress drafts in memory, scoped to the running
// session. Drafts are value-copied on the way in and out so callers never
// share line slices with the store.

type DraftMemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]entities.Draft
}

var _ interfaces.IDraftStore = (*DraftMemoryStore)(nil)

func NewDraftMemoryStore() *DraftMemoryStore {
	return &DraftMemoryStore{drafts: make(map[string]entities.Draft)}
}

func (s *DraftMemoryStore) Put(_ context.Context, d entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = copyDraft(d)
	return nil
}

func (s *DraftMemoryStore) Get(_ context.Context, id string) (entities.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[id]
	if !ok {
		return entities.Draft{}, nil
	}
	return copyDraft(d), nil
}

func (s *DraftMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

func copyDraft(d entities.Draft) entities.Draft {
	lines := make([]entities.QuoteLine, len(d.Lines))
	copy(lines, d.Lines)
	d.Lines = lines
	return d
}
