// Package ports declares the contracts between the application layer and
// its adapters. Every blocking method takes a context first and reports
// failures with the domain error types.
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// QuotationRepository persists quotations.
//
// Implementations store complete values: Save replaces whatever was stored
// under the quotation's ID, and Get returns a copy the caller may mutate.
type QuotationRepository interface {
	// Get returns the quotation with id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (domain.Quotation, error)

	// List returns every quotation ordered by creation time, then ID.
	List(ctx context.Context) ([]domain.Quotation, error)

	// Save inserts or replaces q.
	Save(ctx context.Context, q domain.Quotation) error

	// Delete removes the quotation with id, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// CatalogProvider exposes the read-only service catalog. All methods return
// fresh slices.
type CatalogProvider interface {
	All() []domain.ServiceItem
	ByCategory(category domain.Category) []domain.ServiceItem
	Traditional() []domain.ServiceItem
	ForCity(city string) []domain.ServiceItem
	ForDate(date time.Time) []domain.ServiceItem
	Popular() []domain.ServiceItem
}
