package eventdex

import "github.com/nivara-cloud/eventdex/internal/domain/search/resolved"

// Event is one indexed document.
type Event struct {
	RID       string
	DOCID     string
	Title     string
	Theme     string
	Summary   string
	Highlight string
	Object    string
	Country   string
	Year      string
	Count     int
}

// Match type labels.
const (
	MatchExact  = "exact"
	MatchPrefix = "prefix"
	MatchFuzzy  = "fuzzy"
)

// Confidence labels, strongest first.
const (
	ConfidenceVeryHigh = "very_high"
	ConfidenceHigh     = "high"
	ConfidenceMedium   = "medium"
	ConfidenceLow      = "low"
)

// Hit is a single scored document in a match.
type Hit struct {
	Score  float64
	Fields map[string]string
}

// Bucket is one aggregation bucket.
type Bucket struct {
	Key   string
	Count int
}

// FilteredCount summarizes a free-text search with both filters applied.
type FilteredCount struct {
	Year    string
	Country string
	Count   int
}

// Match is the result of a resolution.
type Match struct {
	Query      string
	Field      string
	MatchType  string
	Confidence string
	TotalCount int
	TopMatches []Hit

	// AggField names the field Buckets group by ("" when absent).
	AggField string
	Buckets  []Bucket
	Filtered *FilteredCount

	Year    string
	Country string
}

func matchFromResolved(m *resolved.Match) *Match {
	out := &Match{
		Query:      m.Query,
		Field:      string(m.Target),
		MatchType:  string(m.MatchType),
		Confidence: string(m.Confidence),
		TotalCount: m.TotalCount,
		AggField:   m.AggField,
		Year:       m.Year,
		Country:    m.Country,
	}

	out.TopMatches = make([]Hit, 0, len(m.TopMatches))
	for i := range m.TopMatches {
		h := &m.TopMatches[i]
		out.TopMatches = append(out.TopMatches, Hit{Score: h.Score(), Fields: h.Source()})
	}

	if len(m.Buckets) > 0 {
		out.Buckets = make([]Bucket, len(m.Buckets))
		for i, b := range m.Buckets {
			out.Buckets[i] = Bucket{Key: b.Key, Count: b.Count}
		}
	}

	if m.Filtered != nil {
		out.Filtered = &FilteredCount{
			Year:    m.Filtered.Year,
			Country: m.Filtered.Country,
			Count:   m.Filtered.Count,
		}
	}
	return out
}
