package stage

import (
	"github.com/nivara-cloud/eventdex/internal/domain/search/hit"
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
)

// Field is one weighted search field of a stage query.
type Field struct {
	Name  string
	Boost float64
}

// Query is the structured description of one search attempt.
// Immutable once built; the builders produce one per stage.
type Query struct {
	matchType match.Type
	target    kind.Kind
	text      string
	fields    []Field
	filters   map[string]string
	limit     int
}

// New creates a stage query.
func New(
	mt match.Type, target kind.Kind, text string,
	fields []Field, filters map[string]string, limit int,
) Query {
	return Query{
		matchType: mt,
		target:    target,
		text:      text,
		fields:    fields,
		filters:   filters,
		limit:     limit,
	}
}

// MatchType returns the stage's match strategy.
func (q *Query) MatchType() match.Type { return q.matchType }

// Target returns the field kind the stage runs against.
func (q *Query) Target() kind.Kind { return q.target }

// Text returns the query text.
func (q *Query) Text() string { return q.text }

// Fields returns the weighted field set (empty for single-field stages).
func (q *Query) Fields() []Field { return q.fields }

// Filters returns the equality filters applied alongside the match.
func (q *Query) Filters() map[string]string { return q.filters }

// Limit returns the fetch cap for the stage.
func (q *Query) Limit() int { return q.limit }

// Result is the outcome of one executed stage, consumed by the cascade
// controller to decide continuation.
type Result struct {
	matchType match.Type
	total     int
	hits      []hit.Hit
}

// NewResult creates a stage result.
func NewResult(mt match.Type, total int, hits []hit.Hit) Result {
	return Result{matchType: mt, total: total, hits: hits}
}

// MatchType returns the strategy the stage ran with.
func (r *Result) MatchType() match.Type { return r.matchType }

// Total returns the executor-reported total match count.
func (r *Result) Total() int { return r.total }

// Hits returns the fetched hits in executor order.
func (r *Result) Hits() []hit.Hit { return r.hits }
