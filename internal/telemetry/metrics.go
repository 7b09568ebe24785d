package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the calculator's Prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration prometheus.Histogram
}

// NewMetrics creates and registers the calculator metrics
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_evaluations_total",
			Help: "Total number of calculations by operator and outcome",
		},
		[]string{"operator", "outcome"},
	)

	m.EvaluationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calc_evaluation_duration_seconds",
			Help:    "Time spent reading and evaluating one calculation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		},
	)

	m.Registry.MustRegister(
		m.EvaluationsTotal,
		m.EvaluationDuration,
	)

	return m
}

// ObserveEvaluation records one finished calculation.
func (m *Metrics) ObserveEvaluation(operator, outcome string, d time.Duration) {
	m.EvaluationsTotal.WithLabelValues(operator, outcome).Inc()
	m.EvaluationDuration.Observe(d.Seconds())
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
