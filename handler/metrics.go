package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/sinklog/core"
)

const namespace = "sinklog"

// Metrics groups the Prometheus counters shared by all sinks of a logger.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Emitted  *prometheus.CounterVec
	Filtered *prometheus.CounterVec
	Failed   *prometheus.CounterVec
}

// NewMetrics returns pointer to a new metrics instance ready to use.
func NewMetrics() *Metrics {
	const subsystem = "sink"
	labels := []string{"sink", "level"}

	return &Metrics{
		Emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "emitted_total",
			Help:      "Number of log lines written by a sink.",
		}, labels),
		Filtered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "filtered_total",
			Help:      "Number of log lines below a sink's threshold.",
		}, labels),
		Failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "failed_total",
			Help:      "Number of log lines a sink failed to deliver.",
		}, labels),
	}
}

// Collectors returns the counters for registration
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{m.Emitted, m.Filtered, m.Failed}
}

func (m *Metrics) observeEmitted(k Kind, l core.Level) {
	if m != nil {
		m.Emitted.WithLabelValues(k.String(), l.String()).Inc()
	}
}

func (m *Metrics) observeFiltered(k Kind, l core.Level) {
	if m != nil {
		m.Filtered.WithLabelValues(k.String(), l.String()).Inc()
	}
}

func (m *Metrics) observeFailed(k Kind, l core.Level) {
	if m != nil {
		m.Failed.WithLabelValues(k.String(), l.String()).Inc()
	}
}
