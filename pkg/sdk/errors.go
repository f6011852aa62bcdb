package eventdex

import "github.com/nivara-cloud/eventdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrQueryTooShort = domain.ErrQueryTooShort
	ErrEmptyQuery    = domain.ErrEmptyQuery
	ErrExecutor      = domain.ErrExecutor
	ErrInvalidEvent  = domain.ErrInvalidEvent
)
