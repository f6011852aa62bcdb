package resolve

import (
	"context"

	"github.com/nivara-cloud/eventdex/internal/domain/search/hit"
	"github.com/nivara-cloud/eventdex/internal/domain/search/match"
	"github.com/nivara-cloud/eventdex/internal/domain/search/query"
)

// cascadeState enumerates the escalation state machine. Every transition
// condition lives in one guard below.
type cascadeState int

const (
	stateExact cascadeState = iota
	statePrefix
	stateFuzzy
	stateDone
)

// outcome is the terminal result of a cascade: the threshold-filtered,
// score-sorted hit set of the stage that satisfied the policy.
type outcome struct {
	matchType  match.Type
	confidence match.Confidence
	hits       []hit.Hit
}

// runCascade executes EXACT -> PREFIX -> FUZZY until a stage satisfies
// the threshold policy. FUZZY always terminates; an empty fuzzy result
// is a valid outcome, not an error.
func (s *Service) runCascade(ctx context.Context, q *query.Query) (outcome, error) {
	var out outcome

	for state := stateExact; state != stateDone; {
		switch state {
		case stateExact:
			res, err := s.execute(ctx, buildIdentifierStage(match.Exact, q.Target(), q.Text()))
			if err != nil {
				return outcome{}, err
			}
			hits := sortByScore(res.Hits())
			if len(hits) >= 1 {
				out = outcome{matchType: match.Exact, confidence: match.VeryHigh, hits: hits}
				state = stateDone
			} else {
				state = statePrefix
			}

		case statePrefix:
			res, err := s.execute(ctx, buildIdentifierStage(match.Prefix, q.Target(), q.Text()))
			if err != nil {
				return outcome{}, err
			}
			// Score filter first, then the cap guard: a prefix stage whose
			// hits all fall below the threshold carries no prefix evidence
			// and escalates, same as one with too many candidates.
			hits := filterByScore(sortByScore(res.Hits()), s.thresholds.ThresholdFor(q.Target(), match.Prefix))
			if n := len(hits); n >= 1 && n <= s.thresholds.MaxResultsFor(match.Prefix) {
				out = outcome{matchType: match.Prefix, confidence: confidenceFor(match.Prefix, n), hits: hits}
				state = stateDone
			} else {
				state = stateFuzzy
			}

		case stateFuzzy:
			res, err := s.execute(ctx, buildIdentifierStage(match.Fuzzy, q.Target(), q.Text()))
			if err != nil {
				return outcome{}, err
			}
			hits := filterByScore(sortByScore(res.Hits()), s.thresholds.ThresholdFor(q.Target(), match.Fuzzy))
			out = outcome{matchType: match.Fuzzy, confidence: confidenceFor(match.Fuzzy, len(hits)), hits: hits}
			state = stateDone
		}
	}

	return out, nil
}
