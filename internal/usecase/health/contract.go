package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker checks that the search index is present.
type IndexChecker interface {
	IndexExists(ctx context.Context) (bool, error)
}
