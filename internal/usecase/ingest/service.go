package ingest

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nivara-cloud/eventdex/internal/domain"
)

const defaultMaxBatch = 1000

// Service loads event documents into the search index.
type Service struct {
	repo     Repository
	maxBatch int
	ingested prometheus.Counter // nil disables
	logger   *zap.Logger
}

// New creates an ingestion service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, maxBatch: defaultMaxBatch, logger: logger}
}

// WithMaxBatch configures the per-request batch ceiling.
func (s *Service) WithMaxBatch(n int) *Service {
	if n > 0 {
		s.maxBatch = n
	}
	return s
}

// WithCounter attaches a counter tracking successfully ingested documents.
func (s *Service) WithCounter(c prometheus.Counter) *Service {
	s.ingested = c
	return s
}

// EnsureIndex creates the events index if it does not exist yet.
func (s *Service) EnsureIndex(ctx context.Context) error {
	return s.repo.EnsureIndex(ctx)
}

// Ingest validates and stores a batch of events. The whole batch is
// rejected on the first invalid document so callers can fix and retry
// without partial writes.
func (s *Service) Ingest(ctx context.Context, events []domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("%w: empty batch", domain.ErrInvalidEvent)
	}
	if len(events) > s.maxBatch {
		return 0, fmt.Errorf("%w: batch of %d exceeds limit %d", domain.ErrInvalidEvent, len(events), s.maxBatch)
	}

	for i := range events {
		if err := events[i].Validate(); err != nil {
			return 0, fmt.Errorf("event %d: %w", i, err)
		}
	}

	if err := s.repo.Upsert(ctx, events); err != nil {
		return 0, fmt.Errorf("store events: %w", err)
	}

	if s.ingested != nil {
		s.ingested.Add(float64(len(events)))
	}
	s.logger.Info("events ingested", zap.Int("count", len(events)))
	return len(events), nil
}
