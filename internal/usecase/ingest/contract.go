package ingest

import (
	"context"

	"github.com/nivara-cloud/eventdex/internal/domain"
)

// Repository defines the storage contract for event documents.
type Repository interface {
	EnsureIndex(ctx context.Context) error
	Upsert(ctx context.Context, events []domain.Event) error
}
