package match

// Type is the match strategy of a search stage.
type Type string

// Match type constants, in cascade order.
const (
	Exact  Type = "exact"
	Prefix Type = "prefix"
	Fuzzy  Type = "fuzzy"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	return t == Exact || t == Prefix || t == Fuzzy
}

// Confidence is a coarse label summarizing how trustworthy a
// match-type/result-count combination is.
type Confidence string

// Confidence labels, strongest first.
const (
	VeryHigh Confidence = "very_high"
	High     Confidence = "high"
	Medium   Confidence = "medium"
	Low      Confidence = "low"
)
