// Package metrics exposes Prometheus instrumentation for the analysis
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors. All methods are safe for concurrent
// use.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	cache    *prometheus.CounterVec
	llmCalls *prometheus.CounterVec
}

// New registers the service collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiment_requests_total",
			Help: "Analysis requests by terminal status.",
		}, []string{"status"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sentiment_request_duration_seconds",
			Help:    "End-to-end analysis latency.",
			Buckets: []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10, 30, 60},
		}),
		cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiment_cache_events_total",
			Help: "Cache gateway events (hit, miss, store, clear).",
		}, []string{"event"}),
		llmCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiment_llm_calls_total",
			Help: "LLM invocations by outcome (success, failure).",
		}, []string{"outcome"}),
	}
}

// NewNop returns metrics bound to a throwaway registry, for tests and for
// callers that do not wire Prometheus.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveRequest(status string, d time.Duration) {
	m.requests.WithLabelValues(status).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) CacheEvent(event string) {
	m.cache.WithLabelValues(event).Inc()
}

func (m *Metrics) LLMCall(outcome string) {
	m.llmCalls.WithLabelValues(outcome).Inc()
}
