// Package core provides the in-memory Graph Store used by every hopgraph
// analysis: a static, undirected, unweighted graph over dense integer node
// indices 0..N-1.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Dense identity: nodes are plain ints, there is no vertex object.
//   - Lazy growth: AddEdge(a,b) extends the node space to max(a,b)+1 and fills
//     newly created nodes with empty neighbor sequences.
//   - Symmetry: after AddEdge(a,b), b ∈ Neighbors(a) and a ∈ Neighbors(b),
//     each exactly once. Repeating the same edge is a no-op.
//   - Self-loops: AddEdge(v,v) is allowed and puts v once into its own sequence
//     (so it contributes 1 to Degree(v)).
//   - Stable order: neighbor sequences keep insertion order. The order carries
//     no meaning, but it is what makes shortest-path tie-breaking reproducible.
//
// Lifecycle:
//
//	g := core.NewGraph()          // single writer (the loader) ...
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	adj := g.Adjacency()          // ... then any number of readers
//
// Core Methods:
//
//	AddEdge(a, b int) error   // O(1) amortized
//	HasEdge(a, b int) bool    // O(1)
//	HasNode(v int) bool       // O(1)
//	Degree(v int) int         // O(1)
//	Neighbors(v int) []int    // O(d), returns a copy
//	Adjacency() [][]int       // O(V+E), deep-copied snapshot
//	Edges() []Edge            // O(V+E), each undirected edge once
//	NodeCount() int           // O(1)
//	EdgeCount() int           // O(1)
//	Stats() Stats             // O(V)
//	Clone() *Graph            // O(V+E)
//
// Query methods are total: an out-of-range node simply has degree 0 and no
// neighbors. The only error is ErrNegativeNode from AddEdge.
//
// Concurrency: a single sync.RWMutex guards the adjacency. Algorithms take one
// Adjacency() snapshot and then run lock-free, so many analyses can share one
// Graph.
package core
