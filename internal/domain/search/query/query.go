package query

import (
	"strings"

	"github.com/nivara-cloud/eventdex/internal/domain"
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
)

// Query is a validated search input. Queries that violate the target
// field's minimum length never reach the cascade.
type Query struct {
	text    string
	target  kind.Kind
	year    string
	country string
}

// New validates an identifier query against the kind's minimum length.
func New(text string, k kind.Kind) (Query, error) {
	text = strings.TrimSpace(text)
	if got := len(text); got < k.MinLength() {
		return Query{}, domain.NewQueryTooShort(k.MinLength(), got)
	}
	return Query{text: text, target: k}, nil
}

// NewMulti validates a free-text query with optional year/country
// equality filters.
func NewMulti(text, year, country string) (Query, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Query{}, domain.ErrEmptyQuery
	}
	return Query{
		text:    text,
		target:  kind.Multi,
		year:    strings.TrimSpace(year),
		country: strings.TrimSpace(country),
	}, nil
}

// Text returns the query text.
func (q *Query) Text() string { return q.text }

// Target returns the field kind the query runs against.
func (q *Query) Target() kind.Kind { return q.target }

// Year returns the optional year equality filter ("" when absent).
func (q *Query) Year() string { return q.year }

// Country returns the optional country equality filter ("" when absent).
func (q *Query) Country() string { return q.country }

// HasFilters reports whether any equality filter is set.
func (q *Query) HasFilters() bool { return q.year != "" || q.country != "" }
