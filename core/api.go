// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and cloning on top of the core types.

package core

// Stats produces a snapshot of node/edge counts and degree extremes.
//
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		NodeCount:     len(g.adjacency),
		EdgeCount:     len(g.edges),
		SelfLoopCount: g.loops,
	}
	for _, nbrs := range g.adjacency {
		d := len(nbrs)
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}

// Clone returns a deep copy with identical node space, neighbor order and
// edge set. The clone shares no memory with g.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make([][]int, len(g.adjacency)),
		edges:     make(map[edgeKey]struct{}, len(g.edges)),
		loops:     g.loops,
	}
	for v, nbrs := range g.adjacency {
		out.adjacency[v] = cloneInts(nbrs)
	}
	for k := range g.edges {
		out.edges[k] = struct{}{}
	}

	return out
}
