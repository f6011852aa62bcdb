package resolve

import (
	"sort"

	"github.com/nivara-cloud/eventdex/internal/domain/search/hit"
	"github.com/nivara-cloud/eventdex/internal/domain/search/resolved"
)

// groupBy counts hits per distinct value of the given source field.
// Hits with an empty field value are skipped. Buckets come back sorted
// by count descending, then key ascending, capped at maxBuckets. Because
// the input is the same filtered hit set the totals are derived from,
// bucket counts always sum to the reported total.
func groupBy(hits []hit.Hit, field string) []resolved.Bucket {
	counts := make(map[string]int, len(hits))
	for _, h := range hits {
		key := h.Field(field)
		if key == "" {
			continue
		}
		counts[key]++
	}

	buckets := make([]resolved.Bucket, 0, len(counts))
	for key, n := range counts {
		buckets = append(buckets, resolved.Bucket{Key: key, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})

	if len(buckets) > maxBuckets {
		buckets = buckets[:maxBuckets]
	}
	return buckets
}
