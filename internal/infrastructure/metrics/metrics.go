// Package metrics exposes prometheus instrumentation for compliance evaluation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance module. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// Evaluations by entity type and outcome (payable, blocked, failed)
	Evaluations *prometheus.CounterVec

	// Single-entity evaluation latency, document fetch included
	EvaluateLatency *prometheus.HistogramVec

	// Overview pass latency
	OverviewLatency prometheus.Histogram

	// Status cache lookups by result (hit, miss, error)
	CacheLookups *prometheus.CounterVec

	// Digest emails sent
	DigestsSent prometheus.Counter
}

// New registers the metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "egest_compliance_evaluations_total",
			Help: "Total compliance evaluations by entity type and outcome",
		}, []string{"entity_type", "outcome"}),

		EvaluateLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "egest_compliance_evaluate_duration_seconds",
			Help:    "Duration of a single entity evaluation including document fetch",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"entity_type"}),

		OverviewLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "egest_compliance_overview_duration_seconds",
			Help:    "Duration of a full compliance overview pass",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "egest_compliance_status_cache_lookups_total",
			Help: "Status cache lookups by result",
		}, []string{"result"}),

		DigestsSent: f.NewCounter(prometheus.CounterOpts{
			Name: "egest_compliance_digests_sent_total",
			Help: "Expiry digest emails sent",
		}),
	}
}

// Outcome labels for IncrementEvaluation.
const (
	OutcomePayable = "payable"
	OutcomeBlocked = "blocked"
	OutcomeFailed  = "failed"
)

// Cache lookup labels for IncrementCacheLookup.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

func (m *Metrics) IncrementEvaluation(entityType, outcome string) {
	if m != nil {
		m.Evaluations.WithLabelValues(entityType, outcome).Inc()
	}
}

func (m *Metrics) ObserveEvaluateLatency(entityType string, d time.Duration) {
	if m != nil {
		m.EvaluateLatency.WithLabelValues(entityType).Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveOverviewLatency(d time.Duration) {
	if m != nil {
		m.OverviewLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncrementDigestsSent() {
	if m != nil {
		m.DigestsSent.Inc()
	}
}
