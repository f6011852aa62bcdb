package resolve

import (
	"github.com/nivara-cloud/eventdex/internal/domain"
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
	"github.com/nivara-cloud/eventdex/internal/domain/search/query"
	"github.com/nivara-cloud/eventdex/internal/domain/search/stage"
)

// buildIdentifierStage describes one cascade attempt against an
// identifier field. The stage always fetches up to the internal cap so
// the filtered count stays accurate.
func buildIdentifierStage(mt match.Type, k kind.Kind, text string) stage.Query {
	return stage.New(mt, k, text, nil, nil, fetchCap)
}

// multiFields is the fixed weighted field set of the free-text search.
// Weights are enforced by the index schema; the stage carries them so
// the query description stays self-contained.
var multiFields = []stage.Field{
	{Name: domain.FieldTitle, Boost: 3.0},
	{Name: domain.FieldRID, Boost: 2.0},
	{Name: domain.FieldDOCID, Boost: 2.0},
	{Name: domain.FieldTheme, Boost: 2.0},
	{Name: domain.FieldHighlight, Boost: 2.0},
	{Name: domain.FieldCountry, Boost: 1.5},
	{Name: domain.FieldYear, Boost: 1.5},
}

// buildMultiStage describes the single fuzzy-tolerant multi-field query.
// There is no cascade on this path.
func buildMultiStage(q *query.Query) stage.Query {
	var filters map[string]string
	if q.HasFilters() {
		filters = make(map[string]string, 2)
		if q.Year() != "" {
			filters[domain.FieldYear] = q.Year()
		}
		if q.Country() != "" {
			filters[domain.FieldCountry] = q.Country()
		}
	}
	return stage.New(match.Fuzzy, kind.Multi, q.Text(), multiFields, filters, fetchCap)
}
