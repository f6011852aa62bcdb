package events

import (
	"github.com/nivara-cloud/eventdex/internal/db"
	"github.com/nivara-cloud/eventdex/internal/domain"
)

// indexDefinition builds the events index schema. Identifier and filter
// fields are indexed twice: as analyzed TEXT for prefix/fuzzy matching
// and as an untokenized TAG alias for exact matching. TEXT weights carry
// the multi-field boost table.
func indexDefinition(name string) *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:        name,
		StorageType: db.StorageHash,
		Prefixes:    []string{domain.KeyPrefix},
		Fields: []db.IndexField{
			{Name: domain.FieldRID, Type: db.IndexFieldText, NoStem: true, Weight: 2.0},
			{Name: domain.FieldRID, Alias: domain.FieldRID + domain.ExactSuffix, Type: db.IndexFieldTag},
			{Name: domain.FieldDOCID, Type: db.IndexFieldText, NoStem: true, Weight: 2.0},
			{Name: domain.FieldDOCID, Alias: domain.FieldDOCID + domain.ExactSuffix, Type: db.IndexFieldTag},
			{Name: domain.FieldTitle, Type: db.IndexFieldText, Weight: 3.0},
			{Name: domain.FieldTheme, Type: db.IndexFieldText, Weight: 2.0},
			{Name: domain.FieldSummary, Type: db.IndexFieldText, Weight: 1.5},
			{Name: domain.FieldHighlight, Type: db.IndexFieldText, Weight: 2.0},
			{Name: domain.FieldObject, Type: db.IndexFieldText, Weight: 1.2},
			{Name: domain.FieldCountry, Type: db.IndexFieldText, NoStem: true, Weight: 1.5},
			{Name: domain.FieldCountry, Alias: domain.FieldCountry + domain.ExactSuffix, Type: db.IndexFieldTag},
			{Name: domain.FieldYear, Type: db.IndexFieldText, NoStem: true, Weight: 1.5},
			{Name: domain.FieldYear, Alias: domain.FieldYear + domain.ExactSuffix, Type: db.IndexFieldTag},
			{Name: domain.FieldCount, Type: db.IndexFieldNumeric},
		},
	}
}
