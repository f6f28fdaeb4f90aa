// Package memory provides an in-process quotation store.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// Store keeps quotations in a map. Values are deep-copied on the way in and
// out so callers never share item slices with the store.
type Store struct {
	mu         sync.RWMutex
	quotations map[string]domain.Quotation
}

// New creates an empty store.
func New() *Store {
	return &Store{quotations: make(map[string]domain.Quotation)}
}

// Get returns the quotation with id.
func (s *Store) Get(_ context.Context, id string) (domain.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotations[id]
	if !ok {
		return domain.Quotation{}, domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	return q.Clone(), nil
}

// List returns all quotations ordered by creation time, then ID.
func (s *Store) List(_ context.Context) ([]domain.Quotation, error) {
	s.mu.RLock()
	out := make([]domain.Quotation, 0, len(s.quotations))

	for _, q := range s.quotations {
		out = append(out, q.Clone())
	}
	s.mu.RUnlock()

	domain.SortByCreation(out)

	return out, nil
}

// Save inserts or replaces q.
func (s *Store) Save(_ context.Context, q domain.Quotation) error {
	if q.ID == "" {
		return domain.NewValidationError("id", "cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotations[q.ID] = q.Clone()

	return nil
}

// Delete removes the quotation with id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotations[id]; !ok {
		return domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	delete(s.quotations, id)

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "storage"
}

// Check implements ports.HealthChecker. The memory store is always ready.
func (s *Store) Check(_ context.Context) error {
	return nil
}
