package kind

// Kind identifies which field family a search targets.
type Kind string

// Search target constants.
const (
	// RID targets the resource identifier field via the cascade.
	RID Kind = "rid"
	// DOCID targets the document identifier field via the cascade.
	DOCID Kind = "docid"
	// Multi targets the weighted multi-field free-text query (no cascade).
	Multi Kind = "multi"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == RID || k == DOCID || k == Multi
}

// MinLength returns the minimum query length accepted for the kind.
func (k Kind) MinLength() int {
	switch k {
	case RID:
		return 3
	case DOCID:
		return 4
	default:
		return 1
	}
}

// Related returns the identifier field paired for aggregation:
// RID searches aggregate by DOCID and vice versa.
func (k Kind) Related() Kind {
	switch k {
	case RID:
		return DOCID
	case DOCID:
		return RID
	default:
		return ""
	}
}
