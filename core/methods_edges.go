// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge, HasEdge, Edges, EdgeCount.
// Determinism:
//   - Edges() walks nodes ascending and neighbors in insertion order.
// Concurrency:
//   - AddEdge under the write lock, queries under the read lock.

package core

// AddEdge inserts the undirected edge {a,b}.
//
// Steps:
//  1. Reject negative indices (ErrNegativeNode); nothing is mutated.
//  2. Grow the node space to max(a,b)+1 with empty neighbor sequences.
//  3. If {a,b} is already present, return (idempotent).
//  4. Append b to a's sequence and, unless a == b, a to b's sequence.
//
// Complexity: O(1) amortized, plus O(k) when growth adds k nodes.
func (g *Graph) AddEdge(a, b int) error {
	if a < 0 || b < 0 {
		return ErrNegativeNode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.grow(max(a, b) + 1)

	key := newEdgeKey(a, b)
	if _, ok := g.edges[key]; ok {
		return nil
	}
	g.edges[key] = struct{}{}

	g.adjacency[a] = append(g.adjacency[a], b)
	if a == b {
		g.loops++
		return nil
	}
	g.adjacency[b] = append(g.adjacency[b], a)

	return nil
}

// grow extends adjacency to n nodes. Caller holds the write lock.
func (g *Graph) grow(n int) {
	for len(g.adjacency) < n {
		g.adjacency = append(g.adjacency, nil)
	}
}

// HasEdge reports whether {a,b} was inserted. Order of endpoints is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[newEdgeKey(a, b)]

	return ok
}

// EdgeCount returns the number of distinct undirected edges (self-loops once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns every undirected edge once, with From <= To.
//
// Order: From ascending, then To in From's neighbor insertion order. Two
// graphs built from the same edge sequence therefore list edges identically.
//
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			if u <= v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}

	return out
}
