package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome and slot label values used across the metrics below.
const (
	LookupSuggestions = "suggestions"
	LookupWeather     = "weather"

	OutcomeSuccess  = "success"
	OutcomeEmpty    = "empty"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// query engine.
type Metrics struct {
	Lookups        *prometheus.CounterVec   // labels: kind={suggestions,weather}, outcome
	LookupDuration *prometheus.HistogramVec // labels: kind={suggestions,weather}
	StaleDiscards  *prometheus.CounterVec   // labels: slot={suggestions,weather}
	DebounceFires  prometheus.Counter

	SuggestionCache *prometheus.CounterVec // labels: result={hit,miss}
	SessionActive   prometheus.Gauge
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skymood",
			Name:      "lookups_total",
			Help:      "Provider lookups by kind and outcome.",
		}, []string{"kind", "outcome"}),
		LookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skymood",
			Name:      "lookup_duration_seconds",
			Help:      "Provider lookup duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"kind"}),
		StaleDiscards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skymood",
			Name:      "stale_discards_total",
			Help:      "Responses discarded because a newer request superseded them.",
		}, []string{"slot"}),
		DebounceFires: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skymood",
			Name:      "debounce_fires_total",
			Help:      "Suggestion lookups fired after a settled debounce pause.",
		}),
		SuggestionCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skymood",
			Name:      "suggestion_cache_total",
			Help:      "Suggestion cache lookups by result.",
		}, []string{"result"}),
		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skymood",
			Name:      "session_active",
			Help:      "1 while the query coordinator is accepting input, 0 after close.",
		}),
	}

	prometheus.MustRegister(
		m.Lookups,
		m.LookupDuration,
		m.StaleDiscards,
		m.DebounceFires,
		m.SuggestionCache,
		m.SessionActive,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Lookups:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "skymood", Name: "lookups_total"}, []string{"kind", "outcome"}),
		LookupDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "skymood", Name: "lookup_duration_seconds"}, []string{"kind"}),
		StaleDiscards:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "skymood", Name: "stale_discards_total"}, []string{"slot"}),
		DebounceFires:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "skymood", Name: "debounce_fires_total"}),
		SuggestionCache: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "skymood", Name: "suggestion_cache_total"}, []string{"result"}),
		SessionActive:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "skymood", Name: "session_active"}),
	}
}
