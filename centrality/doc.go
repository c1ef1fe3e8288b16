// Package centrality turns per-source shortest-path results into node
// rankings.
//
// Betweenness (approximate)
//
// For every ordered pair (s, t) with t reachable from s and t != s, the
// dijkstra engine yields ONE representative shortest path. Every node lying
// strictly inside that path, neither s nor t, gains one occurrence. The score
// of v is
//
//	occurrences(v) / (N · (N − 1))
//
// where N is the total node count including isolated nodes. This is not
// Brandes' betweenness: ties between equally short paths are not split, the
// representative path simply wins. Nodes that never occur inside a path are
// absent from the score map, and a graph with fewer than two nodes has an
// empty map.
//
// The fold is commutative and associative, so ApproxBetweenness fans the
// sources out to a pool of workers, each folding into a private Accumulator,
// and merges the partial counts serially. The result is identical for every
// worker count and every processing order.
//
// Closeness
//
//	closeness(v) = 1 / Σ_{u reachable, u != v} dist(v, u)
//
// computed with one breadth-first search per node. A node that reaches
// nothing scores 0.
//
// Complexity (V = nodes, E = edges)
//
//   - ApproxBetweenness: O(V · (E + V) log V) time, O(V) memory per worker
//     plus O(V) per accumulator.
//   - AllPaths: same time, but O(V²·L) memory for the materialized triples
//     (L = mean path length). Use it only on small graphs.
//   - Closeness: O(V · (V + E)).
//
// Usage
//
//	acc, err := centrality.ApproxBetweenness(ctx, g, centrality.WithWorkers(8))
//	if err != nil {
//	    // ErrNilGraph, ErrBadWorkers, dijkstra option errors, ctx.Err()
//	}
//	scores := acc.Scores()
package centrality
