package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics("test")

	m.RecordRequest("/api/submit", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/api/submit", "POST", 200, 10*time.Millisecond)
	m.RecordError("/api/submit", "POST", "PERIOD_CLOSED")
	m.RecordResponseAccepted()
	m.RecordMirrorFailure("survey.period_updated")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("/api/submit", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorCount.WithLabelValues("/api/submit", "POST", "PERIOD_CLOSED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.responses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mirrorFailures.WithLabelValues("survey.period_updated")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
		m.RecordResponseAccepted()
		m.RecordMirrorFailure("x")
	})
}
