// Package dijkstra provides the Shortest-Path Engine of hopgraph: single-source
// hop distances, tie-aware predecessor lists and one representative shortest
// path per reachable node, over an unweighted, undirected core.Graph.
//
// Algorithm (priority-queue relaxation with unit edge cost):
//
//  1. dist[source] = 0, every other node Unreachable; predecessor lists empty.
//  2. Min-heap of (dist, node), seeded with (0, source).
//  3. Pop the minimum. If its distance exceeds the recorded best, drop it
//     (lazy deletion of a stale entry).
//  4. For each neighbor, candidate = popped + 1:
//     – candidate <  best: update best, push, reset predecessors to [popped];
//     – candidate == best: append popped to the predecessors (a tie).
//  5. For every reachable node, walk predecessors back to the source and
//     reverse the walk. Adjacent duplicates are collapsed.
//
// Tie-breaking:
//
//	Several shortest paths may exist between two nodes. Reconstruction follows
//	one predecessor per step: the first recorded one (TieFirstDiscovered,
//	default) or the smallest index (TieLowestIndex). Either way the path is a
//	valid shortest path; which one is chosen is a documented approximation that
//	downstream betweenness inherits.
//
// Totality:
//
//	There are no failure conditions on graph content. An out-of-range source
//	yields an all-Unreachable result with empty paths; the empty graph yields
//	an empty result.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, ok := res.Distance(4)   // 2, true
//	path := res.PathTo(4)      // [0 2 4]
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
