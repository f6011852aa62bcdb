package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nivara-cloud/eventdex/internal/domain"
	"github.com/nivara-cloud/eventdex/internal/domain/search/kind"
	"github.com/nivara-cloud/eventdex/internal/domain/search/resolved"
	logpkg "github.com/nivara-cloud/eventdex/internal/logger"
	healthuc "github.com/nivara-cloud/eventdex/internal/usecase/health"
	ingestuc "github.com/nivara-cloud/eventdex/internal/usecase/ingest"
	resolveuc "github.com/nivara-cloud/eventdex/internal/usecase/resolve"
)

// Server exposes the resolver over HTTP.
type Server struct {
	resolver *resolveuc.Service
	ingest   *ingestuc.Service
	health   *healthuc.Service
	logger   *zap.Logger
	outcomes *prometheus.CounterVec // labels: field, match_type, confidence; nil disables
}

// NewServer creates an HTTP API server. outcomes may be nil.
func NewServer(
	resolver *resolveuc.Service,
	ingest *ingestuc.Service,
	health *healthuc.Service,
	outcomes *prometheus.CounterVec,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		resolver: resolver,
		ingest:   ingest,
		health:   health,
		logger:   logger,
		outcomes: outcomes,
	}
}

// Routes registers all API endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/v1/search/rid", s.SearchByRID)
	r.Get("/api/v1/search/docid", s.SearchByDOCID)
	r.Get("/api/v1/search/events", s.SearchEvents)
	r.Post("/api/v1/events", s.IngestEvents)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// --- Response DTOs ---

type bucketJSON struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type filteredCountJSON struct {
	Year    string `json:"year"`
	Country string `json:"country"`
	Count   int    `json:"count"`
}

type matchResponse struct {
	Query      string `json:"query"`
	Field      string `json:"field"`
	MatchType  string `json:"match_type"`
	Confidence string `json:"confidence"`
	TotalCount int    `json:"total_count"`

	DOCIDAggregation []bucketJSON       `json:"docid_aggregation,omitempty"`
	RIDAggregation   []bucketJSON       `json:"rid_aggregation,omitempty"`
	CountByYear      []bucketJSON       `json:"count_by_year,omitempty"`
	CountByCountry   []bucketJSON       `json:"count_by_country,omitempty"`
	FilteredCount    *filteredCountJSON `json:"filtered_count,omitempty"`

	FilteredByYear    string `json:"filtered_by_year,omitempty"`
	FilteredByCountry string `json:"filtered_by_country,omitempty"`

	TopMatches []map[string]any `json:"top_3_matches"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Search handlers ---

// SearchByRID handles GET /api/v1/search/rid.
func (s *Server) SearchByRID(w http.ResponseWriter, r *http.Request) {
	m, err := s.resolver.SearchByRID(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writeMatch(w, m)
}

// SearchByDOCID handles GET /api/v1/search/docid.
func (s *Server) SearchByDOCID(w http.ResponseWriter, r *http.Request) {
	m, err := s.resolver.SearchByDOCID(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writeMatch(w, m)
}

// SearchEvents handles GET /api/v1/search/events.
func (s *Server) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m, err := s.resolver.SearchEvents(r.Context(), q.Get("q"), q.Get("year"), q.Get("country"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.writeMatch(w, m)
}

func (s *Server) writeMatch(w http.ResponseWriter, m *resolved.Match) {
	if s.outcomes != nil {
		s.outcomes.WithLabelValues(string(m.Target), string(m.MatchType), string(m.Confidence)).Inc()
	}
	writeJSON(w, http.StatusOK, matchToResponse(m))
}

func matchToResponse(m *resolved.Match) matchResponse {
	resp := matchResponse{
		Query:             m.Query,
		Field:             string(m.Target),
		MatchType:         string(m.MatchType),
		Confidence:        string(m.Confidence),
		TotalCount:        m.TotalCount,
		FilteredByYear:    m.Year,
		FilteredByCountry: m.Country,
		TopMatches:        topMatchesToJSON(m),
	}

	buckets := bucketsToJSON(m.Buckets)
	switch m.AggField {
	case string(kind.DOCID):
		resp.DOCIDAggregation = buckets
	case string(kind.RID):
		resp.RIDAggregation = buckets
	case domain.FieldYear:
		resp.CountByYear = buckets
	case domain.FieldCountry:
		resp.CountByCountry = buckets
	}

	if m.Filtered != nil {
		resp.FilteredCount = &filteredCountJSON{
			Year:    m.Filtered.Year,
			Country: m.Filtered.Country,
			Count:   m.Filtered.Count,
		}
	}
	return resp
}

func bucketsToJSON(buckets []resolved.Bucket) []bucketJSON {
	if len(buckets) == 0 {
		return nil
	}
	out := make([]bucketJSON, len(buckets))
	for i, b := range buckets {
		out[i] = bucketJSON{Key: b.Key, Count: b.Count}
	}
	return out
}

func topMatchesToJSON(m *resolved.Match) []map[string]any {
	out := make([]map[string]any, 0, len(m.TopMatches))
	for i := range m.TopMatches {
		h := &m.TopMatches[i]
		entry := make(map[string]any, len(h.Source())+1)
		for k, v := range h.Source() {
			entry[k] = v
		}
		entry["score"] = roundScore(h.Score())
		out = append(out, entry)
	}
	return out
}

// roundScore trims scores to six decimals for stable JSON output.
func roundScore(s float64) float64 {
	return math.Round(s*1e6) / 1e6
}

// --- Ingestion ---

type ingestRequest struct {
	Events []eventJSON `json:"events"`
}

type eventJSON struct {
	RID       string `json:"rid"`
	DOCID     string `json:"docid"`
	Title     string `json:"event_title"`
	Theme     string `json:"event_theme"`
	Summary   string `json:"event_summary"`
	Highlight string `json:"event_highlight"`
	Object    string `json:"event_object"`
	Country   string `json:"country"`
	Year      string `json:"year"`
	Count     int    `json:"event_count"`
}

type ingestResponse struct {
	Ingested int `json:"ingested"`
}

// IngestEvents handles POST /api/v1/events.
func (s *Server) IngestEvents(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	events := make([]domain.Event, len(req.Events))
	for i, e := range req.Events {
		events[i] = domain.Event{
			RID:       e.RID,
			DOCID:     e.DOCID,
			Title:     e.Title,
			Theme:     e.Theme,
			Summary:   e.Summary,
			Highlight: e.Highlight,
			Object:    e.Object,
			Country:   e.Country,
			Year:      e.Year,
			Count:     e.Count,
		}
	}

	n, err := s.ingest.Ingest(r.Context(), events)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ingestResponse{Ingested: n})
}

// --- Health and metrics ---

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- Error handling ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errLabel, message string) {
	writeJSON(w, status, errorResponse{Error: errLabel, Message: message})
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	// Prefer the request-scoped logger (carries request_id).
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))

	var tooShort *domain.QueryTooShortError
	switch {
	case errors.As(err, &tooShort):
		writeError(w, http.StatusBadRequest, "Query too short",
			tooShortMessage(tooShort.Min, tooShort.Got))
	case errors.Is(err, domain.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "Empty query", "Please provide a search query")
	case errors.Is(err, domain.ErrInvalidEvent):
		writeError(w, http.StatusBadRequest, "Invalid event", err.Error())
	case errors.Is(err, domain.ErrExecutor):
		writeError(w, http.StatusBadGateway, "Search backend unavailable",
			"The search index did not respond, try again later")
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal error", "internal error")
	}
}

func tooShortMessage(minLen, got int) string {
	return fmt.Sprintf("Please provide at least %d characters (got %d)", minLen, got)
}
