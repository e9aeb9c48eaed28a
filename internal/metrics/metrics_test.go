package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Resolution(OutcomeLoaded)
	m.Resolution(OutcomeLoaded)
	m.Resolution(OutcomeFailed)
	m.Loaded("file", 10*time.Millisecond)
	m.RolledBack()
	m.Registered(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolutions.WithLabelValues(OutcomeLoaded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("file")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rollbacks))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.registered))

	n, err := testutil.GatherAndCount(reg, "hclimport_unit_init_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Resolution(OutcomeCached)
		m.Loaded("file", time.Second)
		m.RolledBack()
		m.Registered(1)
	})
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
