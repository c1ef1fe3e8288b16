package analysis

import (
	"strconv"

	"github.com/katalvlaran/hopgraph/metrics"
	"github.com/katalvlaran/hopgraph/report"
)

// buildReport assembles the report model from a finished run.
func buildReport(opts Options, res *Result) *report.Report {
	rep := &report.Report{Title: opts.Title}
	rep.AddStat("run_id", res.RunID)
	rep.AddStat("nodes", res.Stats.NodeCount)
	rep.AddStat("edges", res.Stats.EdgeCount)
	rep.AddStat("self_loops", res.Stats.SelfLoopCount)
	rep.AddStat("isolated_nodes", res.Stats.IsolatedCount)
	rep.AddStat("max_degree", res.Stats.MaxDegree)
	rep.AddStat("components", len(res.Components))
	rep.AddStat("largest_component", metrics.Largest(res.Components))
	rep.AddStat("ordered_pairs", orderedPairs(res.Stats.NodeCount))

	rep.Sections = append(rep.Sections,
		report.Section{
			Title:   "Degree distribution",
			Key:     "degree",
			Metric:  "nodes",
			Integer: true,
			Entries: report.Ascending(res.Distribution),
		},
		report.Section{
			Title:   "Top " + topLabel(opts.Top) + " by degree",
			Metric:  "degree",
			Integer: true,
			Entries: report.TopNSlice(res.Degrees, opts.Top),
		},
		report.Section{
			Title:   "Top " + topLabel(opts.Top) + " by second-hop neighbors",
			Metric:  "second_hop",
			Integer: true,
			Entries: report.TopNSlice(res.SecondHop, opts.Top),
		},
		report.Section{
			Title:   "Top " + topLabel(opts.Top) + " by betweenness (approximate)",
			Metric:  "betweenness",
			Entries: report.TopN(res.Betweenness, opts.Top),
		},
	)
	if res.Closeness != nil {
		rep.Sections = append(rep.Sections, report.Section{
			Title:   "Top " + topLabel(opts.Top) + " by closeness",
			Metric:  "closeness",
			Entries: report.TopN(res.Closeness, opts.Top),
		})
	}

	return rep
}

func topLabel(n int) string {
	if n <= 0 {
		return "all"
	}

	return strconv.Itoa(n)
}

func orderedPairs(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1)
}
