package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementEvaluation("supplier", OutcomePayable)
	m.IncrementEvaluation("supplier", OutcomePayable)
	m.IncrementEvaluation("worker", OutcomeBlocked)
	m.IncrementCacheLookup(CacheHit)
	m.IncrementDigestsSent()
	m.ObserveEvaluateLatency("supplier", 20*time.Millisecond)
	m.ObserveOverviewLatency(time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("supplier", OutcomePayable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("worker", OutcomeBlocked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DigestsSent))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OverviewLatency))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementEvaluation("supplier", OutcomeFailed)
		m.ObserveEvaluateLatency("supplier", time.Millisecond)
		m.ObserveOverviewLatency(time.Millisecond)
		m.IncrementCacheLookup(CacheMiss)
		m.IncrementDigestsSent()
	})
}
