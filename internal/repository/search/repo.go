package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/nivara-cloud/eventdex/internal/db"
	"github.com/nivara-cloud/eventdex/internal/domain"
	"github.com/nivara-cloud/eventdex/internal/domain/search/hit"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
	"github.com/nivara-cloud/eventdex/internal/domain/search/stage"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

// Repo implements usecase/resolve.Executor: it renders a stage.Query
// into FT query syntax, runs it, and adapts entries into domain hits.
type Repo struct {
	store     store
	indexName string
}

// New creates a search repository over the given index.
func New(s store, indexName string) *Repo {
	return &Repo{store: s, indexName: indexName}
}

// Execute runs one search stage against the index.
func (r *Repo) Execute(ctx context.Context, q *stage.Query) (*stage.Result, error) {
	queryStr, err := renderQuery(q)
	if err != nil {
		return nil, err
	}

	sr, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName: r.indexName,
		Query:     queryStr,
		Limit:     q.Limit(),
	})
	if err != nil {
		return nil, fmt.Errorf("execute %s stage: %w", q.MatchType(), err)
	}

	hits := make([]hit.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		hits = append(hits, hit.New(entry.Score, entry.Fields))
	}

	result := stage.NewResult(q.MatchType(), sr.Total, hits)
	return &result, nil
}

// renderQuery translates a stage query into FT.SEARCH syntax. Match
// semantics (exact TAG term, trailing-wildcard prefix, Levenshtein
// fuzzy) all live in the backend; only the syntax is assembled here.
func renderQuery(q *stage.Query) (string, error) {
	var matchPart string

	switch q.MatchType() {
	case match.Exact:
		field := string(q.Target()) + domain.ExactSuffix
		matchPart = fmt.Sprintf("@%s:{%s}", field, escapeTag(q.Text()))

	case match.Prefix:
		matchPart = fmt.Sprintf("@%s:(%s*)", q.Target(), escapeTerm(q.Text()))

	case match.Fuzzy:
		if len(q.Fields()) > 0 {
			matchPart = renderMultiField(q)
		} else {
			matchPart = fmt.Sprintf("@%s:(%s)", q.Target(), tolerantGroup(q.Text()))
		}

	default:
		return "", fmt.Errorf("unsupported match type: %s", q.MatchType())
	}

	filterPart := renderFilters(q.Filters())
	if filterPart == "" {
		return matchPart, nil
	}
	return filterPart + " " + matchPart, nil
}

// renderMultiField restricts a tolerant query to the stage's weighted
// field set. Field weights are applied by the index schema.
func renderMultiField(q *stage.Query) string {
	names := make([]string, len(q.Fields()))
	for i, f := range q.Fields() {
		names[i] = f.Name
	}
	return fmt.Sprintf("@%s:(%s)", strings.Join(names, "|"), tolerantGroup(q.Text()))
}

// tolerantGroup renders each query token as an OR of its exact, prefix,
// and fuzzy forms, then ORs the tokens together. Fuzzy distance follows
// token length: <3 exact only, 3-5 one edit, >5 two edits.
func tolerantGroup(text string) string {
	tokens := strings.Fields(text)
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		esc := escapeTerm(tok)
		switch {
		case len(tok) < 3:
			parts = append(parts, esc)
		case len(tok) <= 5:
			parts = append(parts, fmt.Sprintf("%s|%s*|%%%s%%", esc, esc, esc))
		default:
			parts = append(parts, fmt.Sprintf("%s|%s*|%%%%%s%%%%", esc, esc, esc))
		}
	}
	return strings.Join(parts, "|")
}

// renderFilters builds TAG equality filters on the exact-form aliases.
func renderFilters(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	// Deterministic order keeps queries reproducible.
	parts := make([]string, 0, len(filters))
	for _, field := range []string{domain.FieldYear, domain.FieldCountry} {
		if v, ok := filters[field]; ok && v != "" {
			parts = append(parts, fmt.Sprintf("@%s%s:{%s}", field, domain.ExactSuffix, escapeTag(v)))
		}
	}
	return strings.Join(parts, " ")
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeTag(s string) string {
	return tagEscaper.Replace(s)
}

var termEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)

func escapeTerm(s string) string {
	return termEscaper.Replace(s)
}
