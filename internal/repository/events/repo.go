package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nivara-cloud/eventdex/internal/db"
	"github.com/nivara-cloud/eventdex/internal/domain"
)

// store is the consumer interface for event storage (ISP).
type store interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
}

// Repo manages the events index and its documents.
type Repo struct {
	store     store
	indexName string
}

// New creates an events repository over the given index.
func New(s store, indexName string) *Repo {
	return &Repo{store: s, indexName: indexName}
}

// EnsureIndex creates the events FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName)
	if err != nil {
		return fmt.Errorf("probe index %s: %w", r.indexName, err)
	}
	if exists {
		return nil
	}

	if err := r.store.CreateIndex(ctx, indexDefinition(r.indexName)); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", r.indexName, err)
	}
	return nil
}

// IndexExists reports whether the events FT index is present. Used by
// health checks.
func (r *Repo) IndexExists(ctx context.Context) (bool, error) {
	return r.store.IndexExists(ctx, r.indexName)
}

// Upsert stores a batch of event documents keyed by DOCID.
func (r *Repo) Upsert(ctx context.Context, evs []domain.Event) error {
	items := make([]db.HashSetItem, 0, len(evs))
	for i := range evs {
		items = append(items, db.HashSetItem{
			Key:    domain.KeyPrefix + evs[i].DOCID,
			Fields: eventFields(&evs[i]),
		})
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("upsert %d events: %w", len(evs), err)
	}
	return nil
}

func eventFields(e *domain.Event) map[string]string {
	return map[string]string{
		domain.FieldRID:       e.RID,
		domain.FieldDOCID:     e.DOCID,
		domain.FieldTitle:     e.Title,
		domain.FieldTheme:     e.Theme,
		domain.FieldSummary:   e.Summary,
		domain.FieldHighlight: e.Highlight,
		domain.FieldObject:    e.Object,
		domain.FieldCountry:   e.Country,
		domain.FieldYear:      e.Year,
		domain.FieldCount:     strconv.Itoa(e.Count),
	}
}
