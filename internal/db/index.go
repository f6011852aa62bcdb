package db

// StorageType selects the document storage an index is built over.
type StorageType string

// Storage type constants.
const (
	StorageHash StorageType = "HASH"
)

// IndexFieldType is the FT field type.
type IndexFieldType string

// Index field type constants.
const (
	IndexFieldText    IndexFieldType = "TEXT"
	IndexFieldTag     IndexFieldType = "TAG"
	IndexFieldNumeric IndexFieldType = "NUMERIC"
)

// IndexField describes one schema field of an FT index. The same source
// hash field may be indexed more than once under different aliases
// (e.g. an identifier both as analyzed TEXT and as an exact-match TAG).
type IndexField struct {
	Name   string
	Alias  string
	Type   IndexFieldType
	Weight float64 // TEXT only; 0 = backend default
	NoStem bool    // TEXT only
}

// IndexDefinition describes an FT index to create.
type IndexDefinition struct {
	Name        string
	StorageType StorageType
	Prefixes    []string
	Fields      []IndexField
}
