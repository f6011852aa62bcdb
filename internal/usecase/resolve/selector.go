package resolve

import (
	"sort"

	"github.com/nivara-cloud/eventdex/internal/domain/search/hit"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
)

// sortByScore returns a copy of hits ordered by score, highest first.
// The sort is stable so equally scored hits keep executor order.
func sortByScore(hits []hit.Hit) []hit.Hit {
	out := make([]hit.Hit, len(hits))
	copy(out, hits)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}

// filterByScore keeps hits whose score meets min. A non-positive min
// keeps everything.
func filterByScore(hits []hit.Hit, min float64) []hit.Hit {
	if min <= 0 {
		return hits
	}
	out := make([]hit.Hit, 0, len(hits))
	for _, h := range hits {
		if h.Score() >= min {
			out = append(out, h)
		}
	}
	return out
}

// topMatches truncates a sorted hit set to the result limit.
func topMatches(hits []hit.Hit) []hit.Hit {
	if len(hits) <= topLimit {
		return hits
	}
	return hits[:topLimit]
}

// confidenceFor maps a terminal stage and its filtered hit count onto a
// confidence label. Exact matches are always very high; prefix and fuzzy
// degrade once the filtered set grows past the tight count.
func confidenceFor(mt match.Type, n int) match.Confidence {
	switch mt {
	case match.Exact:
		return match.VeryHigh
	case match.Prefix:
		if n <= tightCount {
			return match.High
		}
		return match.Medium
	default:
		if n <= tightCount {
			return match.Medium
		}
		return match.Low
	}
}
