package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrQueryTooShort signals a query below the field's minimum length.
	ErrQueryTooShort = errors.New("query too short")
	// ErrEmptyQuery signals a missing search query.
	ErrEmptyQuery = errors.New("empty query")
	// ErrExecutor signals a query executor (backend/transport) failure.
	ErrExecutor = errors.New("search executor failure")
	// ErrInvalidEvent signals an event document that cannot be indexed.
	ErrInvalidEvent = errors.New("invalid event")
)

// QueryTooShortError wraps ErrQueryTooShort with the violated minimum.
type QueryTooShortError struct {
	Min int
	Got int
}

func (e *QueryTooShortError) Error() string {
	return fmt.Sprintf("%s: need at least %d characters (got %d)", ErrQueryTooShort.Error(), e.Min, e.Got)
}

func (e *QueryTooShortError) Unwrap() error { return ErrQueryTooShort }

// NewQueryTooShort creates a query length violation error.
func NewQueryTooShort(minLen, got int) error {
	return &QueryTooShortError{Min: minLen, Got: got}
}
