// Package analysis is the driver that threads a graph through the engines in
// a fixed order:
//
//	load → degrees, distribution, second hop, components
//	     → approximate betweenness (parallel over sources)
//	     → closeness (optional)
//	     → DOT export (optional)
//	     → report
//
// Each stage is timed, logged at Info with logrus fields (stage, elapsed,
// run_id plus stage-specific counts) and observed in the telemetry
// histogram. A load failure aborts the run before any metric is computed;
// context cancellation aborts between sources.
package analysis
