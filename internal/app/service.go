// Package app contains the use cases behind the HTTP and CLI adapters. It
// coordinates the domain, recommendation and pricing packages with the
// stores declared in ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
	"github.com/jsamuelsen/event-quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/event-quote-service/internal/ports"
	"github.com/jsamuelsen/event-quote-service/internal/pricing"
)

var tracer = otel.Tracer("github.com/jsamuelsen/event-quote-service/internal/app")

// Operation names reported to logs and commit metrics.
const (
	OpCreate          = "create"
	OpUpdate          = "update"
	OpDuplicate       = "duplicate"
	OpAddItem         = "add-item"
	OpRemoveItem      = "remove-item"
	OpRegionalPricing = "regional-pricing"
	OpFinalize        = "finalize"
)

// EditFunc applies changes to an open edit session.
type EditFunc func(s *domain.EditSession) error

// QuotationDefaults are applied to newly created quotations.
type QuotationDefaults struct {
	GuestCount    int
	TaxPercentage decimal.Decimal
}

// QuotationServiceConfig holds the dependencies of a QuotationService.
// Repository and Catalog are required.
type QuotationServiceConfig struct {
	Repository ports.QuotationRepository
	Catalog    ports.CatalogProvider
	Metrics    *metrics.Domain
	Defaults   *QuotationDefaults
	Clock      func() time.Time
	Logger     *slog.Logger
}

// QuotationService manages stored quotations. Every write opens an edit
// session on a copy and persists the committed value through the executor.
type QuotationService struct {
	repo     ports.QuotationRepository
	catalog  ports.CatalogProvider
	exec     *Executor
	defaults QuotationDefaults
	now      func() time.Time
	logger   *slog.Logger
}

// NewQuotationService creates the service. It panics when a required
// dependency is missing.
func NewQuotationService(cfg QuotationServiceConfig) *QuotationService {
	if cfg.Repository == nil {
		panic("app: quotation repository is required")
	}

	if cfg.Catalog == nil {
		panic("app: catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.QuotationService"))

	defaults := QuotationDefaults{
		GuestCount:    domain.DefaultGuestCount,
		TaxPercentage: decimal.NewFromInt(domain.DefaultTaxPercentage),
	}
	if cfg.Defaults != nil {
		defaults = *cfg.Defaults
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &QuotationService{
		repo:     cfg.Repository,
		catalog:  cfg.Catalog,
		exec:     NewExecutor(ExecutorConfig{Logger: logger, Observer: cfg.Metrics.RecordCommit}),
		defaults: defaults,
		now:      clock,
		logger:   logger,
	}
}

// commit is the input of every write operation: a way to obtain the base
// quotation and the edits to apply to it.
type commit struct {
	id   string
	load func(ctx context.Context) (domain.Quotation, error)
	edit EditFunc
}

func (s *QuotationService) commitOperation(name string) Operation[commit, domain.Quotation, domain.Quotation, domain.Quotation] {
	return Operation[commit, domain.Quotation, domain.Quotation, domain.Quotation]{
		Name: name,
		Validate: func(_ context.Context, in commit) error {
			if in.load == nil {
				return domain.NewValidationError("id", "cannot be empty")
			}

			if in.edit == nil {
				return domain.NewValidationError("edit", "no changes supplied")
			}

			return nil
		},
		Perform: func(ctx context.Context, in commit) (domain.Quotation, error) {
			base, err := in.load(ctx)
			if err != nil {
				return domain.Quotation{}, err
			}

			session := base.Edit()
			if err := in.edit(session); err != nil {
				return domain.Quotation{}, err
			}

			return session.Commit()
		},
		Verify: func(_ context.Context, _ commit, q domain.Quotation) (domain.Quotation, error) {
			return q, verifyQuotation(q)
		},
		Archive: func(ctx context.Context, _ commit, q domain.Quotation) error {
			return s.repo.Save(ctx, q)
		},
		Respond: func(_ context.Context, _ commit, q domain.Quotation) (domain.Quotation, error) {
			return q, nil
		},
	}
}

func verifyQuotation(q domain.Quotation) error {
	if q.ID == "" {
		return domain.NewValidationError("id", "cannot be empty")
	}

	if q.GuestCount < 0 {
		return domain.NewValidationErrorWithValue("guestCount", "must not be negative", q.GuestCount)
	}

	seen := make(map[string]struct{}, len(q.Items))

	for _, item := range q.Items {
		if item.Quantity < 1 {
			return domain.NewValidationErrorWithValue("quantity", "must be at least 1", item.Quantity)
		}

		if _, dup := seen[item.ID]; dup {
			return domain.NewConflictError(domain.EntityLineItem, "duplicate line id "+item.ID)
		}

		seen[item.ID] = struct{}{}
	}

	return nil
}

func (s *QuotationService) run(ctx context.Context, name string, in commit) (domain.Quotation, error) {
	ctx, span := tracer.Start(ctx, "QuotationService."+name,
		trace.WithAttributes(attribute.String("quotation.id", in.id)),
	)
	defer span.End()

	q, err := Execute(ctx, s.exec, s.commitOperation(name), in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return domain.Quotation{}, fmt.Errorf("%s quotation: %w", name, err)
	}

	return q, nil
}

func (s *QuotationService) existing(id string) func(ctx context.Context) (domain.Quotation, error) {
	if id == "" {
		return nil
	}

	return func(ctx context.Context) (domain.Quotation, error) {
		return s.repo.Get(ctx, id)
	}
}

// Create stores a new quotation built from the defaults plus edit. A nil
// edit creates an empty quotation.
func (s *QuotationService) Create(ctx context.Context, edit EditFunc) (domain.Quotation, error) {
	if edit == nil {
		edit = func(*domain.EditSession) error { return nil }
	}

	fresh := func(context.Context) (domain.Quotation, error) {
		q := domain.NewQuotation(s.now())
		q.GuestCount = s.defaults.GuestCount
		q.TaxPercentage = s.defaults.TaxPercentage

		return q, nil
	}

	return s.run(ctx, OpCreate, commit{load: fresh, edit: edit})
}

// Get returns the stored quotation with id.
func (s *QuotationService) Get(ctx context.Context, id string) (domain.Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("getting quotation: %w", err)
	}

	return q, nil
}

// List returns every stored quotation, oldest first.
func (s *QuotationService) List(ctx context.Context) ([]domain.Quotation, error) {
	qs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	return qs, nil
}

// Update applies edit to the stored quotation with id. Either every change
// in edit is persisted or none is.
func (s *QuotationService) Update(ctx context.Context, id string, edit EditFunc) (domain.Quotation, error) {
	return s.run(ctx, OpUpdate, commit{id: id, load: s.existing(id), edit: edit})
}

// Delete removes the quotation with id.
func (s *QuotationService) Delete(ctx context.Context, id string) error {
	logger := s.contextLogger(ctx).With(slog.String("quotation_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting quotation: %w", err)
	}

	logger.InfoContext(ctx, "quotation deleted")

	return nil
}

// Duplicate stores a copy of the quotation with id under a new identity.
func (s *QuotationService) Duplicate(ctx context.Context, id string) (domain.Quotation, error) {
	var load func(context.Context) (domain.Quotation, error)

	if id != "" {
		load = func(ctx context.Context) (domain.Quotation, error) {
			src, err := s.repo.Get(ctx, id)
			if err != nil {
				return domain.Quotation{}, err
			}

			return src.Duplicate(s.now()), nil
		}
	}

	noop := func(*domain.EditSession) error { return nil }

	return s.run(ctx, OpDuplicate, commit{id: id, load: load, edit: noop})
}

// AddItemInput selects the service to add. Custom takes precedence over a
// catalog lookup by ServiceName (and Category, when set).
type AddItemInput struct {
	ServiceName string
	Category    domain.Category
	Custom      *domain.ServiceItem
	Quantity    int
}

// AddItem appends a line to the quotation with id and returns the edited
// quotation and the new line's ID. Catalog lookups include the supplements
// for the quotation's venue and event date.
func (s *QuotationService) AddItem(ctx context.Context, id string, in AddItemInput) (domain.Quotation, string, error) {
	var lineID string

	q, err := s.run(ctx, OpAddItem, commit{id: id, load: s.existing(id), edit: s.ItemAdder(in, &lineID)})
	if err != nil {
		return domain.Quotation{}, "", err
	}

	return q, lineID, nil
}

// ItemAdder returns an edit that appends the service selected by in. The new
// line's ID is stored in lineID when it is not nil.
func (s *QuotationService) ItemAdder(in AddItemInput, lineID *string) EditFunc {
	return func(session *domain.EditSession) error {
		service := in.Custom

		if service == nil {
			found, err := s.lookupService(session.Preview(), in.ServiceName, in.Category)
			if err != nil {
				return err
			}

			service = &found
		}

		id, err := session.AddItem(*service, in.Quantity)
		if err != nil {
			return err
		}

		if lineID != nil {
			*lineID = id
		}

		return nil
	}
}

// Chain runs edits in order and stops at the first error. Nil entries are
// skipped.
func Chain(edits ...EditFunc) EditFunc {
	return func(session *domain.EditSession) error {
		for _, edit := range edits {
			if edit == nil {
				continue
			}

			if err := edit(session); err != nil {
				return err
			}
		}

		return nil
	}
}

func (s *QuotationService) lookupService(q domain.Quotation, name string, category domain.Category) (domain.ServiceItem, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ServiceItem{}, domain.NewValidationError("serviceName", "cannot be empty")
	}

	candidates := append(s.catalog.ForCity(q.Venue), s.catalog.ForDate(q.EventDate)...)

	for _, svc := range candidates {
		if category != "" && svc.Category != category {
			continue
		}

		if strings.EqualFold(svc.Name, name) {
			return svc, nil
		}
	}

	return domain.ServiceItem{}, domain.NewNotFoundError(domain.EntityService, name)
}

// RemoveItem deletes one line from the quotation with id.
func (s *QuotationService) RemoveItem(ctx context.Context, id, lineID string) (domain.Quotation, error) {
	edit := func(session *domain.EditSession) error {
		return session.RemoveItem(lineID)
	}

	return s.run(ctx, OpRemoveItem, commit{id: id, load: s.existing(id), edit: edit})
}

// ApplyRegionalPricing re-prices every line of the quotation with id for
// city and returns the multiplier used. Manual override prices are
// replaced.
func (s *QuotationService) ApplyRegionalPricing(ctx context.Context, id, city string) (domain.Quotation, decimal.Decimal, error) {
	m := pricing.Multiplier(city)

	edit := func(session *domain.EditSession) error {
		return session.Reprice(m)
	}

	q, err := s.run(ctx, OpRegionalPricing, commit{id: id, load: s.existing(id), edit: edit})
	if err != nil {
		return domain.Quotation{}, decimal.Zero, err
	}

	s.contextLogger(ctx).InfoContext(ctx, "regional pricing applied",
		slog.String("quotation_id", id),
		slog.String("tier", string(pricing.TierOf(city))),
		slog.String("multiplier", m.String()),
	)

	return q, m, nil
}

// ToggleFinalized flips the finalized flag of the quotation with id.
func (s *QuotationService) ToggleFinalized(ctx context.Context, id string) (domain.Quotation, error) {
	edit := func(session *domain.EditSession) error {
		_, err := session.ToggleFinalized()
		return err
	}

	return s.run(ctx, OpFinalize, commit{id: id, load: s.existing(id), edit: edit})
}

// Stats summarizes every stored quotation.
func (s *QuotationService) Stats(ctx context.Context) (domain.Statistics, error) {
	ctx, span := tracer.Start(ctx, "QuotationService.Stats")
	defer span.End()

	qs, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.Statistics{}, fmt.Errorf("listing quotations: %w", err)
	}

	stats := domain.Summarize(qs)
	span.SetAttributes(attribute.Int("quotation.count", stats.QuotationCount))

	return stats, nil
}

func (s *QuotationService) contextLogger(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
