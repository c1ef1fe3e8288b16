// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// ErrNegativeNode indicates AddEdge was called with a negative node index.
var ErrNegativeNode = errors.New("core: node index is negative")

// Edge is one undirected edge. Edges() reports every edge once with From <= To.
type Edge struct {
	From int
	To   int
}

// edgeKey is the canonical (lo, hi) form of an undirected edge.
type edgeKey struct {
	lo, hi int
}

// newEdgeKey orders the endpoints so (a,b) and (b,a) map to the same key.
func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// Graph is the dense-index undirected graph.
//
// adjacency[v] is the insertion-ordered neighbor sequence of v.
// edges mirrors adjacency as a set of canonical keys for O(1) membership.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	adjacency [][]int
	edges     map[edgeKey]struct{}
	loops     int // number of self-loops, kept for Stats
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	NodeCount     int // N, including isolated nodes created by growth
	EdgeCount     int // undirected edges, self-loops counted once
	SelfLoopCount int // edges with From == To
	IsolatedCount int // nodes with an empty neighbor sequence
	MaxDegree     int // largest neighbor-sequence length, 0 for an empty graph
}

// NewGraph creates an empty Graph with zero nodes.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		edges: make(map[edgeKey]struct{}),
	}
}
