package resolve

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nivara-cloud/eventdex/internal/domain"
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
	"github.com/nivara-cloud/eventdex/internal/domain/search/query"
	"github.com/nivara-cloud/eventdex/internal/domain/search/resolved"
	"github.com/nivara-cloud/eventdex/internal/domain/search/stage"
)

// Service resolves identifier and free-text queries against the event
// index using the cascading match policy.
type Service struct {
	exec       Executor
	thresholds Thresholds
	stages     *prometheus.CounterVec // labels: field, match_type; nil disables
	logger     *zap.Logger
}

// New creates a resolver. stages may be nil to disable stage counting.
func New(exec Executor, thresholds Thresholds, stages *prometheus.CounterVec, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{exec: exec, thresholds: thresholds, stages: stages, logger: logger}
}

// SearchByRID resolves a resource identifier fragment.
func (s *Service) SearchByRID(ctx context.Context, text string) (*resolved.Match, error) {
	return s.searchIdentifier(ctx, text, kind.RID)
}

// SearchByDOCID resolves a document identifier fragment.
func (s *Service) SearchByDOCID(ctx context.Context, text string) (*resolved.Match, error) {
	return s.searchIdentifier(ctx, text, kind.DOCID)
}

func (s *Service) searchIdentifier(ctx context.Context, text string, k kind.Kind) (*resolved.Match, error) {
	q, err := query.New(text, k)
	if err != nil {
		return nil, err
	}

	out, err := s.runCascade(ctx, &q)
	if err != nil {
		return nil, err
	}

	related := string(k.Related())
	m := &resolved.Match{
		Query:      q.Text(),
		Target:     k,
		MatchType:  out.matchType,
		Confidence: out.confidence,
		TotalCount: len(out.hits),
		TopMatches: topMatches(out.hits),
		AggField:   related,
		Buckets:    groupBy(out.hits, related),
	}

	s.logger.Debug("identifier resolved",
		zap.String("field", string(k)),
		zap.String("match_type", string(out.matchType)),
		zap.String("confidence", string(out.confidence)),
		zap.Int("total_count", m.TotalCount),
	)
	return m, nil
}

// SearchEvents runs the weighted multi-field free-text search with
// optional year/country equality filters. There is no cascade: one
// fuzzy-tolerant query decides the result.
func (s *Service) SearchEvents(ctx context.Context, text, year, country string) (*resolved.Match, error) {
	q, err := query.NewMulti(text, year, country)
	if err != nil {
		return nil, err
	}

	res, err := s.execute(ctx, buildMultiStage(&q))
	if err != nil {
		return nil, err
	}

	hits := filterByScore(sortByScore(res.Hits()), s.thresholds.ThresholdFor(kind.Multi, res.MatchType()))
	m := &resolved.Match{
		Query:      q.Text(),
		Target:     kind.Multi,
		MatchType:  res.MatchType(),
		Confidence: confidenceFor(res.MatchType(), len(hits)),
		TotalCount: len(hits),
		TopMatches: topMatches(hits),
		Year:       q.Year(),
		Country:    q.Country(),
	}

	// Aggregation depends on which filters the caller applied: both
	// collapse to a single filtered count, one groups by the other
	// dimension, none adds no aggregation block.
	switch {
	case q.Year() != "" && q.Country() != "":
		m.Filtered = &resolved.FilteredCount{Year: q.Year(), Country: q.Country(), Count: len(hits)}
	case q.Year() != "":
		m.AggField = domain.FieldYear
		m.Buckets = groupBy(hits, domain.FieldYear)
	case q.Country() != "":
		m.AggField = domain.FieldCountry
		m.Buckets = groupBy(hits, domain.FieldCountry)
	}

	s.logger.Debug("events resolved",
		zap.String("confidence", string(m.Confidence)),
		zap.Int("total_count", m.TotalCount),
		zap.String("year", q.Year()),
		zap.String("country", q.Country()),
	)
	return m, nil
}

// execute runs one stage through the executor, counting it and tagging
// backend failures so transport can distinguish them from bad input.
func (s *Service) execute(ctx context.Context, q stage.Query) (*stage.Result, error) {
	if s.stages != nil {
		s.stages.WithLabelValues(string(q.Target()), string(q.MatchType())).Inc()
	}
	res, err := s.exec.Execute(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExecutor, err)
	}
	return res, nil
}
