package resolve

import (
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
)

// Default threshold values, tuned for high precision on identifier search.
const (
	DefaultMinScoreRID      = 2.5
	DefaultMinScoreDOCID    = 3.5
	DefaultMinPrefixScore   = 1.0
	DefaultMaxPrefixResults = 8
)

// Resolver-internal caps.
const (
	// fetchCap bounds how many hits a single stage pulls from the
	// executor, regardless of backend result-set size.
	fetchCap = 100
	// tightCount separates high from medium confidence on prefix
	// stages, and medium from low on fuzzy stages.
	tightCount = 5
	// topLimit is how many matches the terminal artifact carries.
	topLimit = 3
	// maxBuckets caps aggregation output.
	maxBuckets = 100
)

// Thresholds holds per-field, per-match-type score cutoffs and result
// count limits. Values are fixed at construction; concurrent requests
// share it read-only.
type Thresholds struct {
	minScoreRID      float64
	minScoreDOCID    float64
	minPrefixScore   float64
	maxPrefixResults int
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		minScoreRID:      DefaultMinScoreRID,
		minScoreDOCID:    DefaultMinScoreDOCID,
		minPrefixScore:   DefaultMinPrefixScore,
		maxPrefixResults: DefaultMaxPrefixResults,
	}
}

// NewThresholds builds a policy, substituting defaults for non-positive
// values so partial configuration stays safe.
func NewThresholds(minScoreRID, minScoreDOCID, minPrefixScore float64, maxPrefixResults int) Thresholds {
	t := DefaultThresholds()
	if minScoreRID > 0 {
		t.minScoreRID = minScoreRID
	}
	if minScoreDOCID > 0 {
		t.minScoreDOCID = minScoreDOCID
	}
	if minPrefixScore > 0 {
		t.minPrefixScore = minPrefixScore
	}
	if maxPrefixResults > 0 {
		t.maxPrefixResults = maxPrefixResults
	}
	return t
}

// ThresholdFor returns the minimum hit score accepted for a field and
// match type. Exact matches are trusted at any score.
func (t Thresholds) ThresholdFor(k kind.Kind, mt match.Type) float64 {
	switch mt {
	case match.Prefix:
		return t.minPrefixScore
	case match.Fuzzy:
		switch k {
		case kind.RID:
			return t.minScoreRID
		case kind.DOCID:
			return t.minScoreDOCID
		}
	}
	return 0
}

// MaxResultsFor returns the filtered-count cap above which a stage is
// considered too imprecise to terminate the cascade.
func (t Thresholds) MaxResultsFor(mt match.Type) int {
	if mt == match.Prefix {
		return t.maxPrefixResults
	}
	return fetchCap
}
