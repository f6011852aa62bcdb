package resolve

import (
	"context"

	"github.com/nivara-cloud/eventdex/internal/domain/search/stage"
)

// Executor runs one structured search stage against the document index.
// It must report backend/transport failures as errors, never as an
// empty result.
type Executor interface {
	Execute(ctx context.Context, q *stage.Query) (*stage.Result, error)
}
