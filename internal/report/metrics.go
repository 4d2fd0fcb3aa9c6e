package report

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes recorded by the server.
const (
	outcomeAccepted  = "accepted"
	outcomeInvalid   = "invalid"
	outcomeForbidden = "forbidden"
	outcomeError     = "error"
)

// Metrics exposes submission counters. A nil *Metrics records nothing.
type Metrics struct {
	gatherer    prometheus.Gatherer
	submissions *prometheus.CounterVec
}

// NewMetrics registers the submission counters on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "patrol_submissions_total",
			Help: "Report submissions by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(m.submissions)
	return m
}

func (m *Metrics) observe(kind, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
