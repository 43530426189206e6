package htmlcompare

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	prometheusLabelResult = "result"
	prometheusLabelKind   = "kind"
)

// Metrics tracks validations in prometheus.
type Metrics struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    prometheus.Summary
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmlcompare_validations_total",
				Help: "number of validations by result",
			},
			[]string{prometheusLabelResult},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmlcompare_failures_total",
				Help: "number of validation failures by kind",
			},
			[]string{prometheusLabelKind},
		),
		duration: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name:       "htmlcompare_validation_duration_seconds",
				Help:       "validation duration including parsing",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
		),
	}
	for _, c := range []prometheus.Collector{m.validations, m.failures, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(r *Report, d time.Duration) {
	result := "valid"
	if !r.Valid {
		result = "invalid"
	}
	m.validations.WithLabelValues(result).Inc()
	for kind, count := range r.FailuresByKind() {
		m.failures.WithLabelValues(string(kind)).Add(float64(count))
	}
	m.duration.Observe(d.Seconds())
}
