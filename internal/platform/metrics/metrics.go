// File: internal/platform/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "revert_connect"

// Metrics exposes the Prometheus collectors for gate decisions and directory queries.
type Metrics struct {
	registry         *prometheus.Registry
	gateDecisions    *prometheus.CounterVec
	directoryQueries *prometheus.CounterVec
	mutations        *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, so tests can build as many as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		gateDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gate",
				Name:      "decisions_total",
				Help:      "Access gate decisions by outcome and session kind.",
			},
			[]string{"outcome", "session"},
		),
		directoryQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "directory",
				Name:      "queries_total",
				Help:      "Directory screen queries by screen and whether the base load failed.",
			},
			[]string{"screen", "load_failed"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "directory",
				Name:      "mutations_total",
				Help:      "Create/update operations by entity and result.",
			},
			[]string{"entity", "result"},
		),
	}
	reg.MustRegister(m.gateDecisions, m.directoryQueries, m.mutations)
	return m
}

// ObserveGateDecision counts one gate evaluation.
func (m *Metrics) ObserveGateDecision(outcome, session string) {
	if m == nil {
		return
	}
	m.gateDecisions.WithLabelValues(outcome, session).Inc()
}

// ObserveDirectoryQuery counts one screen query.
func (m *Metrics) ObserveDirectoryQuery(screen string, loadFailed bool) {
	if m == nil {
		return
	}
	m.directoryQueries.WithLabelValues(screen, strconv.FormatBool(loadFailed)).Inc()
}

// ObserveMutation counts one create or update.
func (m *Metrics) ObserveMutation(entity string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.mutations.WithLabelValues(entity, result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GateDecisions is exposed for tests.
func (m *Metrics) GateDecisions() *prometheus.CounterVec { return m.gateDecisions }

// DirectoryQueries is exposed for tests.
func (m *Metrics) DirectoryQueries() *prometheus.CounterVec { return m.directoryQueries }

// Mutations is exposed for tests.
func (m *Metrics) Mutations() *prometheus.CounterVec { return m.mutations }
