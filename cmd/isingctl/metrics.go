// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "isingctl"

// runMetrics collects one run's counters on a private registry. With
// --metrics-file they are written in the Prometheus text format, ready for
// the node_exporter textfile collector.
type runMetrics struct {
	reg        *prometheus.Registry
	enumerated prometheus.Counter
	proposed   prometheus.Counter
	accepted   prometheus.Counter
	levels     prometheus.Gauge
	duration   *prometheus.HistogramVec
	energy     *prometheus.GaugeVec
}

func newRunMetrics() *runMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &runMetrics{
		reg: reg,
		enumerated: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "configurations_enumerated_total",
			Help:      "Spin configurations visited by exact enumeration.",
		}),
		proposed: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "flips_proposed_total",
			Help:      "Single-spin flips proposed by Metropolis sweeps.",
		}),
		accepted: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "flips_accepted_total",
			Help:      "Single-spin flips accepted by Metropolis sweeps.",
		}),
		levels: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "spectrum_levels",
			Help:      "Distinct energy levels found by the last spectrum run.",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of one solver pass at one temperature.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"phase"}),
		energy: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "energy",
			Help:      "Mean energy per method and temperature.",
		}, []string{"method", "temperature"}),
	}
}

func (m *runMetrics) observe(phase string, start time.Time) {
	m.duration.WithLabelValues(phase).Observe(time.Since(start).Seconds())
}

func (m *runMetrics) setEnergy(method string, T, e float64) {
	m.energy.WithLabelValues(method, strconv.FormatFloat(T, 'g', -1, 64)).Set(e)
}

// writeFile stores the registry at path in the text exposition format.
func (m *runMetrics) writeFile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
