// Package hopgraph is a structural analytics toolkit for static, undirected,
// unweighted graphs such as social ego networks.
//
// What is in the box?
//
//	core/         the Graph Store: dense integer nodes, no parallel edges, self-loops
//	edgelist/     "a b" edge-list reader and writer
//	bfs/          breadth-first traversal with depths and parents
//	dijkstra/     unit-cost shortest paths with full predecessor lists
//	metrics/      degrees, degree distribution, second-hop counts, components
//	centrality/   approximate betweenness (one path per pair) and closeness
//	builder/      deterministic and seeded synthetic topologies
//	converters/   Graphviz DOT export
//	report/       ranking and table/JSON/YAML/TOML rendering
//	telemetry/    Prometheus gauges, counters and stage histograms
//	config/       viper-backed settings (flags, HOPGRAPH_* env, .hopgraph.yaml)
//	analysis/     the pipeline that runs all of the above in order
//	cmd/hopgraph  the command-line front end
//
// Quick ASCII example:
//
//	0───1
//	│ ╲ │
//	2───3───4
//	 ╲_____╱
//
// Every shortest path in this graph has at most one interior node, so the
// approximate betweenness of 0, 2 and 3 is 2/(5·4) = 0.1 each, while 1 and 4
// never sit strictly inside a representative path and get no score.
//
//	go install github.com/katalvlaran/hopgraph/cmd/hopgraph@latest
//	hopgraph analyze facebook_combined.txt --top 10 --workers 8
package hopgraph
