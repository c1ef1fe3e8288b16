package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/analysis"
	"github.com/katalvlaran/hopgraph/edgelist"
	"github.com/katalvlaran/hopgraph/report"
	"github.com/katalvlaran/hopgraph/telemetry"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <edge-list>",
		Short: "Compute every metric and print a report",
		Long: "Load an edge list, compute degrees, second-hop counts, components, approximate\n" +
			"betweenness and (optionally) closeness, then print the top nodes per metric.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, args[0])
		},
	}

	f := cmd.Flags()
	f.Int("top", 10, "entries per ranked section (0 lists every node)")
	f.String("format", "table", "output format: table|json|yaml|toml")
	f.Int("workers", 0, "parallel workers for the all-sources pass (default NumCPU)")
	f.Bool("closeness", true, "also compute closeness centrality")
	f.String("tie-break", "first", "representative path policy: first|lowest")
	f.String("dot", "", "also write a Graphviz DOT file, highlighting top betweenness nodes")
	f.String("metrics-file", "", "write Prometheus metrics in textfile format to this path")
	f.Int("max-node", edgelist.DefaultMaxNode, "largest node index accepted by the loader")

	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, path string) error {
	cfg := a.cfg
	rec := telemetry.New()
	p := analysis.New(
		analysis.FromFile(path, edgelist.WithMaxNode(cfg.MaxNode)),
		analysis.Options{
			Top:       cfg.Top,
			Workers:   cfg.Workers,
			TieBreak:  cfg.TieBreakPolicy(),
			Closeness: cfg.Closeness,
			DOTPath:   cfg.DOT,
		},
		a.log.WithField("input", path),
		rec,
	)

	res, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	return report.Render(cmd.OutOrStdout(), res.Report, cfg.ReportFormat())
}
