package resolved

import (
	"github.com/nivara-cloud/eventdex/internal/domain/search/hit"
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
)

// Bucket is one aggregation bucket: a grouping key and its match count.
type Bucket struct {
	Key   string
	Count int
}

// FilteredCount summarizes a multi-field search with both filters applied.
type FilteredCount struct {
	Year    string
	Country string
	Count   int
}

// Match is the terminal artifact of a resolution.
//
// Invariants: len(TopMatches) <= min(3, TotalCount); TopMatches sorted by
// descending score; Buckets sorted by descending count.
type Match struct {
	Query      string
	Target     kind.Kind
	MatchType  match.Type
	Confidence match.Confidence
	TotalCount int
	TopMatches []hit.Hit

	// AggField names the field Buckets group by ("" when no bucket
	// aggregation applies). For identifier searches it is the related
	// identifier field; for multi-field searches, year or country.
	AggField string
	Buckets  []Bucket
	Filtered *FilteredCount

	// Echo of the filters the query ran with.
	Year    string
	Country string
}
