// Package redisstore persists quotations as JSON documents in a Redis hash.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
)

const hashName = "quotations"

// Config configures a Store.
type Config struct {
	Client redis.UniversalClient

	// KeyPrefix is prepended to the hash name, e.g. "quotes:".
	KeyPrefix string

	Logger *slog.Logger
}

// Store keeps one JSON document per quotation, keyed by ID, in a single hash.
type Store struct {
	client redis.UniversalClient
	key    string
	logger *slog.Logger
}

// New creates a store. It panics if cfg.Client is nil.
func New(cfg Config) *Store {
	if cfg.Client == nil {
		panic("redisstore: client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		client: cfg.Client,
		key:    cfg.KeyPrefix + hashName,
		logger: logger.With(slog.String("component", "redisstore.Store")),
	}
}

// NewClient builds a go-redis client from connection settings.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Key returns the hash the store writes to.
func (s *Store) Key() string {
	return s.key
}

// Get returns the quotation with id.
func (s *Store) Get(ctx context.Context, id string) (domain.Quotation, error) {
	data, err := s.client.HGet(ctx, s.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Quotation{}, domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	if err != nil {
		return domain.Quotation{}, domain.NewUnavailableError("redis", err.Error())
	}

	var q domain.Quotation
	if err := json.Unmarshal(data, &q); err != nil {
		return domain.Quotation{}, fmt.Errorf("decoding quotation %s: %w", id, err)
	}

	return q, nil
}

// List returns every decodable quotation ordered by creation time, then ID.
// Documents that fail to decode are logged and skipped, and a failed read
// yields an empty list.
func (s *Store) List(ctx context.Context) ([]domain.Quotation, error) {
	logger := s.contextLogger(ctx)

	docs, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		logger.WarnContext(ctx, "loading quotations failed", slog.Any("error", err))

		return []domain.Quotation{}, nil
	}

	out := make([]domain.Quotation, 0, len(docs))

	for id, doc := range docs {
		var q domain.Quotation
		if err := json.Unmarshal([]byte(doc), &q); err != nil {
			logger.WarnContext(ctx, "skipping undecodable quotation",
				slog.String("quotation_id", id),
				slog.Any("error", err),
			)

			continue
		}

		out = append(out, q)
	}

	domain.SortByCreation(out)

	return out, nil
}

// Save inserts or replaces q.
func (s *Store) Save(ctx context.Context, q domain.Quotation) error {
	if q.ID == "" {
		return domain.NewValidationError("id", "cannot be empty")
	}

	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encoding quotation %s: %w", q.ID, err)
	}

	if err := s.client.HSet(ctx, s.key, q.ID, data).Err(); err != nil {
		return domain.NewUnavailableError("redis", err.Error())
	}

	return nil
}

// Delete removes the quotation with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.client.HDel(ctx, s.key, id).Result()
	if err != nil {
		return domain.NewUnavailableError("redis", err.Error())
	}

	if n == 0 {
		return domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "redis"
}

// Check pings the server.
func (s *Store) Check(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	return nil
}

func (s *Store) contextLogger(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
