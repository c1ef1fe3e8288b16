package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hopgraph/centrality"
	"github.com/katalvlaran/hopgraph/converters"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/dijkstra"
	"github.com/katalvlaran/hopgraph/edgelist"
	"github.com/katalvlaran/hopgraph/metrics"
	"github.com/katalvlaran/hopgraph/report"
	"github.com/katalvlaran/hopgraph/telemetry"
)

// Stage names, used as log field values and histogram labels.
const (
	StageLoad        = "load"
	StageMetrics     = "metrics"
	StageBetweenness = "betweenness"
	StageCloseness   = "closeness"
	StageDOT         = "dot"
	StageReport      = "report"
)

// ErrNoLoader is returned by Run when the pipeline has no graph source.
var ErrNoLoader = errors.New("analysis: no graph loader")

// Loader produces the graph to analyze.
type Loader func(ctx context.Context) (*core.Graph, error)

// FromFile loads an edge-list file.
func FromFile(path string, opts ...edgelist.ReadOption) Loader {
	return func(context.Context) (*core.Graph, error) {
		return edgelist.Load(path, opts...)
	}
}

// FromGraph analyzes an already built graph.
func FromGraph(g *core.Graph) Loader {
	return func(context.Context) (*core.Graph, error) {
		if g == nil {
			return nil, centrality.ErrNilGraph
		}
		return g, nil
	}
}

// Options tunes a run.
type Options struct {
	Title     string
	Top       int // entries per ranked section; <= 0 lists every node
	Workers   int // betweenness/closeness fan-out; < 1 means GOMAXPROCS
	TieBreak  dijkstra.TieBreak
	Closeness bool
	DOTPath   string // empty disables the export
}

// Result carries every computed metric and the rendered report model.
type Result struct {
	RunID        string
	Graph        *core.Graph
	Stats        core.Stats
	Degrees      []int
	Distribution map[int]int
	SecondHop    []int
	Components   []metrics.Component
	Counts       map[int]int
	Betweenness  map[int]float64
	Closeness    map[int]float64 // nil when disabled
	Durations    map[string]time.Duration
	Report       *report.Report
}

// Pipeline runs one analysis.
type Pipeline struct {
	load    Loader
	opts    Options
	log     logrus.FieldLogger
	metrics *telemetry.Recorder
	runID   string
}

// New creates a pipeline. A nil log discards output; a nil recorder records
// nothing.
func New(load Loader, opts Options, log logrus.FieldLogger, rec *telemetry.Recorder) *Pipeline {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if opts.Title == "" {
		opts.Title = "hopgraph analysis"
	}

	return &Pipeline{
		load:    load,
		opts:    opts,
		log:     log,
		metrics: rec,
		runID:   uuid.NewString(),
	}
}

// RunID identifies this pipeline's run in logs, metrics and the report.
func (p *Pipeline) RunID() string { return p.runID }

// Run executes every stage in order and returns the first error.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if p.load == nil {
		return nil, ErrNoLoader
	}
	log := p.log.WithField("run_id", p.runID)
	p.metrics.SetRunID(p.runID)
	res := &Result{RunID: p.runID, Durations: make(map[string]time.Duration)}

	err := p.stage(ctx, log, res, StageLoad, func() (logrus.Fields, error) {
		g, err := p.load(ctx)
		if err != nil {
			return nil, err
		}
		res.Graph = g
		res.Stats = g.Stats()
		p.metrics.SetGraph(res.Stats.NodeCount, res.Stats.EdgeCount)

		return logrus.Fields{"nodes": res.Stats.NodeCount, "edges": res.Stats.EdgeCount}, nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, log, res, StageMetrics, func() (logrus.Fields, error) {
		res.Degrees = metrics.Degrees(res.Graph)
		res.Distribution = metrics.DegreeDistribution(res.Graph)
		res.SecondHop = metrics.SecondHop(res.Graph)
		res.Components = metrics.Components(res.Graph)
		largest := metrics.Largest(res.Components)
		p.metrics.SetComponents(len(res.Components), largest)

		return logrus.Fields{"components": len(res.Components), "largest_component": largest}, nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, log, res, StageBetweenness, func() (logrus.Fields, error) {
		acc, err := centrality.ApproxBetweenness(ctx, res.Graph, p.centralityOptions(log, StageBetweenness, true)...)
		if err != nil {
			return nil, err
		}
		res.Counts = acc.Counts()
		res.Betweenness = acc.Scores()

		return logrus.Fields{"paths": acc.Paths(), "scored_nodes": len(res.Betweenness)}, nil
	})
	if err != nil {
		return nil, err
	}

	if p.opts.Closeness {
		err = p.stage(ctx, log, res, StageCloseness, func() (logrus.Fields, error) {
			c, err := centrality.Closeness(ctx, res.Graph, p.centralityOptions(log, StageCloseness, false)...)
			if err != nil {
				return nil, err
			}
			res.Closeness = c

			return nil, nil
		})
		if err != nil {
			return nil, err
		}
	}

	if p.opts.DOTPath != "" {
		err = p.stage(ctx, log, res, StageDOT, func() (logrus.Fields, error) {
			return logrus.Fields{"path": p.opts.DOTPath}, writeDOT(p.opts.DOTPath, res, p.opts.Top)
		})
		if err != nil {
			return nil, err
		}
	}

	err = p.stage(ctx, log, res, StageReport, func() (logrus.Fields, error) {
		res.Report = buildReport(p.opts, res)

		return logrus.Fields{"sections": len(res.Report.Sections)}, nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// stage times fn, logs its outcome and records the duration.
func (p *Pipeline) stage(ctx context.Context, log logrus.FieldLogger, res *Result, name string, fn func() (logrus.Fields, error)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis: %s: %w", name, err)
	}
	log.WithField("stage", name).Debug("stage started")
	start := time.Now()

	fields, err := fn()
	elapsed := time.Since(start)
	res.Durations[name] = elapsed
	p.metrics.ObserveStage(name, elapsed)

	entry := log.WithFields(fields).WithFields(logrus.Fields{"stage": name, "elapsed": elapsed.String()})
	if err != nil {
		entry.WithError(err).Error("stage failed")
		return fmt.Errorf("analysis: %s: %w", name, err)
	}
	entry.Info("stage finished")

	return nil
}

// centralityOptions maps Options onto the centrality drivers, with a
// progress hook that feeds telemetry and logs roughly every tenth source.
func (p *Pipeline) centralityOptions(log logrus.FieldLogger, stage string, countSources bool) []centrality.Option {
	opts := []centrality.Option{
		centrality.WithTieBreak(p.opts.TieBreak),
		centrality.WithProgress(func(done, total int) {
			if countSources {
				p.metrics.SourceDone()
			}
			step := total / 10
			if step < 1 {
				step = 1
			}
			if done%step == 0 || done == total {
				log.WithFields(logrus.Fields{"stage": stage, "done": done, "total": total}).Debug("progress")
			}
		}),
	}
	if p.opts.Workers > 0 {
		opts = append(opts, centrality.WithWorkers(p.opts.Workers))
	}

	return opts
}

// writeDOT exports the graph with the top betweenness nodes highlighted.
func writeDOT(path string, res *Result, top int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	highlight := make(map[int]bool)
	for _, e := range report.TopN(res.Betweenness, top) {
		highlight[e.Node] = true
	}

	return converters.WriteDOT(f, res.Graph,
		converters.WithGraphName("hopgraph"),
		converters.WithNodeAttrs(func(v int) map[string]string {
			if !highlight[v] {
				return nil
			}
			return map[string]string{"style": "filled", "fillcolor": "orange"}
		}))
}
