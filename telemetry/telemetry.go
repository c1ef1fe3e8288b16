// Package telemetry defines the Prometheus metrics of one analysis run.
//
// Metrics live in a private registry rather than the global default so that
// concurrent runs and tests never collide. A batch run has no scrape
// endpoint; WriteTextfile dumps the registry in the text exposition format
// for node_exporter's textfile collector.
//
// Every method is safe on a nil *Recorder, which records nothing.
package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the run metrics.
type Recorder struct {
	reg *prometheus.Registry

	Nodes            prometheus.Gauge
	Edges            prometheus.Gauge
	Components       prometheus.Gauge
	LargestComponent prometheus.Gauge
	SourcesProcessed prometheus.Counter
	StageDuration    *prometheus.HistogramVec
	RunInfo          *prometheus.GaugeVec
}

// New builds a Recorder with its metrics registered in a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hopgraph_nodes",
			Help: "Node count of the analyzed graph",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hopgraph_edges",
			Help: "Undirected edge count of the analyzed graph",
		}),
		Components: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hopgraph_components",
			Help: "Connected component count",
		}),
		LargestComponent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hopgraph_largest_component_nodes",
			Help: "Node count of the largest connected component",
		}),
		SourcesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hopgraph_sources_processed_total",
			Help: "Shortest-path sources folded into betweenness",
		}),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hopgraph_stage_duration_seconds",
				Help:    "Wall-clock duration of each pipeline stage",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"stage"},
		),
		RunInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hopgraph_run_info",
				Help: "Constant 1, labelled with the run identifier",
			},
			[]string{"run_id"},
		),
	}
	r.reg.MustRegister(
		r.Nodes, r.Edges, r.Components, r.LargestComponent,
		r.SourcesProcessed, r.StageDuration, r.RunInfo,
	)

	return r
}

// Registry exposes the private registry, e.g. for an HTTP handler or tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.reg
}

// SetRunID publishes the run identifier as hopgraph_run_info{run_id}=1.
func (r *Recorder) SetRunID(id string) {
	if r == nil {
		return
	}
	r.RunInfo.Reset()
	r.RunInfo.WithLabelValues(id).Set(1)
}

// SetGraph records the graph shape.
func (r *Recorder) SetGraph(nodes, edges int) {
	if r == nil {
		return
	}
	r.Nodes.Set(float64(nodes))
	r.Edges.Set(float64(edges))
}

// SetComponents records the component count and the largest component size.
func (r *Recorder) SetComponents(count, largest int) {
	if r == nil {
		return
	}
	r.Components.Set(float64(count))
	r.LargestComponent.Set(float64(largest))
}

// SourceDone counts one finished shortest-path source.
func (r *Recorder) SourceDone() {
	if r == nil {
		return
	}
	r.SourcesProcessed.Inc()
}

// ObserveStage records how long a pipeline stage took.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The write goes through a temporary file and a rename.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("telemetry: write textfile: %w", err)
	}

	return nil
}
