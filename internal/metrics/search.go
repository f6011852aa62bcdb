package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search resolution Prometheus metrics.
var (
	ResolveStagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventdex",
			Name:      "resolve_stages_total",
			Help:      "Total number of executed cascade stages",
		},
		[]string{"field", "match_type"},
	)

	ResolveOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventdex",
			Name:      "resolve_outcomes_total",
			Help:      "Total number of completed resolutions",
		},
		[]string{"field", "match_type", "confidence"},
	)

	EventsIngestedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eventdex",
			Name:      "events_ingested_total",
			Help:      "Total number of ingested event documents",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResolveStagesTotal)
	prometheus.MustRegister(ResolveOutcomesTotal)
	prometheus.MustRegister(EventsIngestedTotal)
	searchMetricsRegistered = true
}
