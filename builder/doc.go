// Package builder provides deterministic topology generators for core.Graph.
//
// Generators are Constructors, closures applied in order by BuildGraph under
// one resolved configuration:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Cycle(6),
//	    builder.RandomSparse(100, 0.05),
//	)
//
// Nodes are dense ints. Every constructor numbers its nodes 0..n-1; wrapping it
// in Shifted(k, ...) moves them to k..k+n-1, so several constructors may
// either overlay the same index range or be laid side by side as disjoint
// components. Edges are emitted in a documented, stable order and core's
// AddEdge is idempotent, so overlaying constructors never duplicates edges.
//
// Available topologies:
//
//   - Path(n)         n ≥ 2, edges i-i+1
//   - Cycle(n)        n ≥ 3, Path plus (n-1)-0
//   - Star(n)         n ≥ 2, hub 0, leaves 1..n-1
//   - Wheel(n)        n ≥ 4, hub 0, rim cycle over 1..n-1
//   - Complete(n)     n ≥ 2, every unordered pair
//   - Grid(r, c)      r·c ≥ 2, node r·cols+c, 4-neighborhood
//   - RandomSparse(n, p)  n ≥ 2, each pair {i<j} independently with prob p
//
// Errors: constructors validate first and return sentinels (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource) wrapped with the constructor name;
// BuildGraph adds a "BuildGraph:" prefix. Option constructors panic on
// meaningless values (WithRand(nil)). Nothing panics at
// build time.
//
// Determinism: identical constructors, options and seed give identical graphs,
// including neighbor insertion order.
package builder
