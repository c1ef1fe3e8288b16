// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors, Degree, Adjacency, HasNode, NodeCount.
// Determinism:
//   - Neighbor sequences are returned in insertion order.
// Concurrency:
//   - Read lock only; every returned slice is an independent copy.

package core

// NodeCount returns N, the size of the dense index space 0..N-1.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// HasNode reports whether v lies inside the node space.
// Complexity: O(1).
func (g *Graph) HasNode(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adjacency)
}

// Degree returns the length of v's neighbor sequence, or 0 if v is out of range.
// A self-loop contributes 1.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adjacency) {
		return 0
	}

	return len(g.adjacency[v])
}

// Neighbors returns a copy of v's insertion-ordered neighbor sequence,
// or nil if v is out of range.
// Complexity: O(d).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adjacency) {
		return nil
	}

	return cloneInts(g.adjacency[v])
}

// Adjacency returns a deep-copied snapshot of the whole adjacency structure.
// The outer slice has length NodeCount(); isolated nodes map to empty (non-nil)
// sequences. Callers may keep and read the snapshot without further locking.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Adjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		out[v] = cloneInts(nbrs)
	}

	return out
}

// cloneInts copies s into a fresh non-nil slice.
func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
