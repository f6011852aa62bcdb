package hit

// Hit is a single scored document returned by the query executor.
// The source payload stays opaque: the resolver only inspects the score
// and the grouping key fields.
type Hit struct {
	score  float64
	source map[string]string
}

// New creates a hit.
func New(score float64, source map[string]string) Hit {
	return Hit{score: score, source: source}
}

// Score returns the relevance score.
func (h *Hit) Score() float64 { return h.score }

// Source returns the document's field payload.
func (h *Hit) Source() map[string]string { return h.source }

// Field returns a single source field value ("" when absent).
func (h *Hit) Field(name string) string { return h.source[name] }
