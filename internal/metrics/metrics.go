package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the counters the storage layer and the enrichment gateway
// report to.
type Metrics struct {
	registry *prometheus.Registry

	SlotReads         *prometheus.CounterVec
	SlotReadFailures  *prometheus.CounterVec
	SlotWrites        *prometheus.CounterVec
	SlotWriteFailures *prometheus.CounterVec
	EnrichmentCalls   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SlotReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estetica",
			Name:      "slot_reads_total",
			Help:      "Collection reads per slot.",
		}, []string{"slot"}),
		SlotReadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estetica",
			Name:      "slot_read_failures_total",
			Help:      "Reads that fell back to an empty collection.",
		}, []string{"slot"}),
		SlotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estetica",
			Name:      "slot_writes_total",
			Help:      "Collection writes per slot.",
		}, []string{"slot"}),
		SlotWriteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estetica",
			Name:      "slot_write_failures_total",
			Help:      "Writes rejected by the storage medium.",
		}, []string{"slot"}),
		EnrichmentCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estetica",
			Name:      "enrichment_calls_total",
			Help:      "Text enrichment calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.SlotReads,
		m.SlotReadFailures,
		m.SlotWrites,
		m.SlotWriteFailures,
		m.EnrichmentCalls,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
