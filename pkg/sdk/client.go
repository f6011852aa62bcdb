package eventdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nivara-cloud/eventdex/internal/db"
	dbRedis "github.com/nivara-cloud/eventdex/internal/db/redis"
	"github.com/nivara-cloud/eventdex/internal/domain"
	"github.com/nivara-cloud/eventdex/internal/domain/search/resolved"
	eventsrepo "github.com/nivara-cloud/eventdex/internal/repository/events"
	searchrepo "github.com/nivara-cloud/eventdex/internal/repository/search"
	healthuc "github.com/nivara-cloud/eventdex/internal/usecase/health"
	ingestuc "github.com/nivara-cloud/eventdex/internal/usecase/ingest"
	resolveuc "github.com/nivara-cloud/eventdex/internal/usecase/resolve"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultIndexName        = "events"
)

// Internal interfaces so tests can substitute the services.
type resolverUseCase interface {
	SearchByRID(ctx context.Context, text string) (*resolved.Match, error)
	SearchByDOCID(ctx context.Context, text string) (*resolved.Match, error)
	SearchEvents(ctx context.Context, text, year, country string) (*resolved.Match, error)
}

type ingestUseCase interface {
	EnsureIndex(ctx context.Context) error
	Ingest(ctx context.Context, events []domain.Event) (int, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the eventdex SDK entry point.
type Client struct {
	store      db.Store
	resolveSvc resolverUseCase
	ingestSvc  ingestUseCase
	healthSvc  healthUseCase
}

// New creates an eventdex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{indexName: defaultIndexName}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("eventdex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("eventdex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("eventdex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	eventsRepo := eventsrepo.New(store, cfg.indexName)
	searchRepo := searchrepo.New(store, cfg.indexName)

	thresholds := resolveuc.NewThresholds(
		cfg.minScoreRID,
		cfg.minScoreDOCID,
		cfg.minPrefixScore,
		cfg.maxPrefixResults,
	)

	resolveSvc := resolveuc.New(searchRepo, thresholds, nil, cfg.logger)
	ingestSvc := ingestuc.New(eventsRepo, cfg.logger)
	if cfg.maxBatchSize > 0 {
		ingestSvc = ingestSvc.WithMaxBatch(cfg.maxBatchSize)
	}

	return &Client{
		store:      store,
		resolveSvc: resolveSvc,
		ingestSvc:  ingestSvc,
		healthSvc:  healthuc.New(store, eventsRepo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Healthy reports whether the database and the events index are both
// operational.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.healthSvc.Check(ctx).Status == healthuc.Healthy
}

// EnsureIndex creates the events index if it does not exist yet.
func (c *Client) EnsureIndex(ctx context.Context) error {
	if err := c.ingestSvc.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	return nil
}

// IngestEvents validates and stores a batch of events, returning how
// many were written. The whole batch is rejected on the first invalid
// document.
func (c *Client) IngestEvents(ctx context.Context, events []Event) (int, error) {
	batch := make([]domain.Event, len(events))
	for i, e := range events {
		batch[i] = domain.Event{
			RID:       e.RID,
			DOCID:     e.DOCID,
			Title:     e.Title,
			Theme:     e.Theme,
			Summary:   e.Summary,
			Highlight: e.Highlight,
			Object:    e.Object,
			Country:   e.Country,
			Year:      e.Year,
			Count:     e.Count,
		}
	}
	n, err := c.ingestSvc.Ingest(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("ingest: %w", err)
	}
	return n, nil
}

// SearchRID resolves a resource identifier fragment through the
// exact/prefix/fuzzy cascade.
func (c *Client) SearchRID(ctx context.Context, text string) (*Match, error) {
	m, err := c.resolveSvc.SearchByRID(ctx, text)
	if err != nil {
		return nil, err
	}
	return matchFromResolved(m), nil
}

// SearchDOCID resolves a document identifier fragment through the
// exact/prefix/fuzzy cascade.
func (c *Client) SearchDOCID(ctx context.Context, text string) (*Match, error) {
	m, err := c.resolveSvc.SearchByDOCID(ctx, text)
	if err != nil {
		return nil, err
	}
	return matchFromResolved(m), nil
}

// SearchEvents runs the weighted multi-field free-text search. year and
// country are optional equality filters; pass "" to skip one.
func (c *Client) SearchEvents(ctx context.Context, text, year, country string) (*Match, error) {
	m, err := c.resolveSvc.SearchEvents(ctx, text, year, country)
	if err != nil {
		return nil, err
	}
	return matchFromResolved(m), nil
}
