package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/dijkstra"
	"github.com/katalvlaran/hopgraph/edgelist"
	"github.com/katalvlaran/hopgraph/report"
)

// pathRow is one target of a single-source query.
type pathRow struct {
	Target       int   `json:"target" yaml:"target" toml:"target"`
	Distance     int   `json:"distance" yaml:"distance" toml:"distance"`
	Path         []int `json:"path" yaml:"path" toml:"path"`
	Predecessors []int `json:"predecessors" yaml:"predecessors" toml:"predecessors"`
}

type pathsView struct {
	Source   int       `json:"source" yaml:"source" toml:"source"`
	TieBreak string    `json:"tie_break" yaml:"tie_break" toml:"tie_break"`
	Paths    []pathRow `json:"paths" yaml:"paths" toml:"paths"`
}

func newPathsCmd(a *app) *cobra.Command {
	var source, target int
	cmd := &cobra.Command{
		Use:   "paths <edge-list>",
		Short: "Print hop distances and representative shortest paths from one source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := edgelist.Load(args[0], edgelist.WithMaxNode(a.cfg.MaxNode))
			if err != nil {
				return err
			}
			if !g.HasNode(source) {
				return fmt.Errorf("source %d is not a node (graph has %d)", source, g.NodeCount())
			}
			if cmd.Flags().Changed("target") && !g.HasNode(target) {
				return fmt.Errorf("target %d is not a node (graph has %d)", target, g.NodeCount())
			}

			res, err := dijkstra.Dijkstra(g, source, dijkstra.WithTieBreak(a.cfg.TieBreakPolicy()))
			if err != nil {
				return err
			}
			view := buildPathsView(res, a.cfg.TieBreakPolicy(), target, cmd.Flags().Changed("target"))
			a.log.WithField("source", source).WithField("reachable", len(view.Paths)).Debug("paths computed")

			return renderPaths(cmd.OutOrStdout(), view, a.cfg.ReportFormat())
		},
	}

	f := cmd.Flags()
	f.IntVarP(&source, "source", "s", 0, "source node")
	f.IntVarP(&target, "target", "t", 0, "only report this target")
	f.String("format", "table", "output format: table|json|yaml|toml")
	f.String("tie-break", "first", "representative path policy: first|lowest")
	f.Int("max-node", edgelist.DefaultMaxNode, "largest node index accepted by the loader")

	return cmd
}

// buildPathsView lists every reachable non-source target, or only target
// when single is set. An unreachable single target yields an empty list.
func buildPathsView(res *dijkstra.Result, tb dijkstra.TieBreak, target int, single bool) pathsView {
	view := pathsView{Source: res.Source, TieBreak: tb.String(), Paths: []pathRow{}}
	for v := 0; v < res.Len(); v++ {
		if v == res.Source || (single && v != target) {
			continue
		}
		d, ok := res.Distance(v)
		if !ok {
			continue
		}
		view.Paths = append(view.Paths, pathRow{
			Target:       v,
			Distance:     d,
			Path:         res.PathTo(v),
			Predecessors: res.Predecessors(v),
		})
	}

	return view
}

func renderPaths(w io.Writer, view pathsView, f report.Format) error {
	if f != report.FormatTable {
		return report.Encode(w, view, f)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "source: %d (tie-break %s)\n", view.Source, view.TieBreak)
	fmt.Fprintln(tw, "TARGET\tDIST\tPATH\tPREDECESSORS")
	for _, r := range view.Paths {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", r.Target, r.Distance, joinInts(r.Path, " → "), joinInts(r.Predecessors, ","))
	}

	return tw.Flush()
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
