// Package metrics holds the Prometheus collectors exported by the resolution
// engine. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the resolutions counter.
const (
	OutcomeLoaded = "loaded"
	OutcomeCached = "cached"
	OutcomeFailed = "failed"
)

// Metrics groups the engine's collectors.
type Metrics struct {
	resolutions  *prometheus.CounterVec
	loads        *prometheus.CounterVec
	rollbacks    prometheus.Counter
	initDuration prometheus.Histogram
	registered   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hclimport_resolutions_total",
				Help: "Total number of unit resolutions by outcome.",
			},
			[]string{"outcome"},
		),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hclimport_unit_loads_total",
				Help: "Total number of units initialized, by body kind.",
			},
			[]string{"kind"},
		),
		rollbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hclimport_rollbacks_total",
				Help: "Total number of registry entries evicted after a failed initialization.",
			},
		),
		initDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hclimport_unit_init_duration_seconds",
				Help:    "Time taken to run a unit body.",
				Buckets: prometheus.DefBuckets,
			},
		),
		registered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hclimport_registered_units",
				Help: "Number of units currently held by the registry.",
			},
		),
	}
	reg.MustRegister(m.resolutions, m.loads, m.rollbacks, m.initDuration, m.registered)
	return m
}

// Resolution counts one finished resolution by outcome.
func (m *Metrics) Resolution(outcome string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
}

// Loaded records one initialized unit of the given kind and how long its body
// took to run.
func (m *Metrics) Loaded(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(kind).Inc()
	m.initDuration.Observe(d.Seconds())
}

// RolledBack counts one evicted registry entry.
func (m *Metrics) RolledBack() {
	if m == nil {
		return
	}
	m.rollbacks.Inc()
}

// Registered sets the registry size gauge.
func (m *Metrics) Registered(n int) {
	if m == nil {
		return
	}
	m.registered.Set(float64(n))
}
