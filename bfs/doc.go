// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a source node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: slice from node → distance (edges) from the source, or Unreached
//   - Parent: slice from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), MaxDepth limit, context cancellation.
//
// Why
//
//   - Exact hop distances in O(V + E); the reference that the heap-based
//     engine in package dijkstra is checked against.
//   - Closeness centrality and connected components are built on it.
//
// Determinism
//
//	Neighbors are enqueued in core insertion order, so the visit sequence and
//	the parent tree are fully reproducible for a fixed edge-insertion order.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, context error, or hook error
//	}
//	path, err := res.PathTo(4)
//
// Many-source callers take g.Adjacency() once and call Run(adj, source) per
// source to avoid re-snapshotting the graph.
package bfs
