package db

// SearchQuery is a single FT.SEARCH invocation: a rendered query string
// and a fetch cap. Callers render the query syntax; the store only
// executes it. Hits come back scored; ordering is the backend's.
type SearchQuery struct {
	IndexName    string
	Query        string
	Limit        int
	ReturnFields []string // empty = return all stored fields
}

// SearchResult is the output of a search operation. Total is the
// backend-reported match count, which may exceed len(Entries) when the
// fetch cap truncates the result set.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
