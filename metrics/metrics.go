// Package metrics holds the Prometheus collectors of one incarcnet process.
//
// Collectors live on a private registry rather than the global default so
// tests and repeated pipeline runs never collide. A batch process has no
// scrape endpoint; WriteTextfile dumps the registry in the text exposition
// format for the node-exporter textfile collector instead.
//
// Every method is safe on a nil *Collector, which disables metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "incarcnet"

// Collector bundles the pipeline metrics.
type Collector struct {
	registry *prometheus.Registry

	RecordsLoaded   prometheus.Counter
	RecordsRejected prometheus.Counter
	ExportFailures  prometheus.Counter
	Runs            *prometheus.CounterVec
	GraphVertices   *prometheus.GaugeVec
	GraphEdges      *prometheus.GaugeVec
	StageDuration   *prometheus.HistogramVec
}

// New creates a Collector and registers it on a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "records_loaded_total",
			Help:      "Records that passed cleaning and validation.",
		}),
		RecordsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "records_rejected_total",
			Help:      "CSV rows dropped during cleaning.",
		}),
		ExportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "export_failures_total",
			Help:      "DOT writes or PNG renders that failed.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"status"}),
		GraphVertices: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Vertices of the most recently built graph.",
		}, []string{"variant"}),
		GraphEdges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_edges",
			Help:      "Edges of the most recently built graph.",
		}, []string{"variant"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
	}

	c.registry.MustRegister(
		c.RecordsLoaded,
		c.RecordsRejected,
		c.ExportFailures,
		c.Runs,
		c.GraphVertices,
		c.GraphEdges,
		c.StageDuration,
	)

	return c
}

// Registry exposes the underlying registry as a Gatherer.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ObserveLoad records the outcome of one ingestion.
func (c *Collector) ObserveLoad(loaded, rejected int) {
	if c == nil {
		return
	}
	c.RecordsLoaded.Add(float64(loaded))
	c.RecordsRejected.Add(float64(rejected))
}

// SetGraph records the size of a built graph.
func (c *Collector) SetGraph(variant string, vertices, edges int) {
	if c == nil {
		return
	}
	c.GraphVertices.WithLabelValues(variant).Set(float64(vertices))
	c.GraphEdges.WithLabelValues(variant).Set(float64(edges))
}

// ExportFailed counts one failed export or render.
func (c *Collector) ExportFailed() {
	if c == nil {
		return
	}
	c.ExportFailures.Inc()
}

// RunFinished counts a pipeline run as "ok" or "error".
func (c *Collector) RunFinished(err error) {
	if c == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.Runs.WithLabelValues(status).Inc()
}

// Stage starts timing stage and returns the func that stops the clock.
//
//	defer c.Stage("load")()
func (c *Collector) Stage(stage string) func() {
	if c == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		c.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

// WriteTextfile writes every metric to path atomically in the Prometheus
// text format.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
