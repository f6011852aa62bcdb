package domain

// Canonical field names of an event document, shared by the index
// schema, the stage builders, and the response payloads.
const (
	FieldRID       = "rid"
	FieldDOCID     = "docid"
	FieldTitle     = "event_title"
	FieldTheme     = "event_theme"
	FieldSummary   = "event_summary"
	FieldHighlight = "event_highlight"
	FieldObject    = "event_object"
	FieldCountry   = "country"
	FieldYear      = "year"
	FieldCount     = "event_count"
)

// ExactSuffix is appended to a field name for its untokenized TAG alias
// in the index schema (rid -> rid_exact).
const ExactSuffix = "_exact"

// KeyPrefix namespaces all event hash keys in the store.
const KeyPrefix = "eventdex:"
