// Package metrics computes per-node structural counts over a core.Graph.
//
// What
//
//   - Degrees: len(Neighbors(v)) for every node, O(V).
//   - DegreeDistribution: degree → number of nodes with that degree.
//   - SecondHop: number of distinct nodes at exactly two hops from v, that is
//     reachable through a neighbor but neither v itself nor a direct neighbor.
//   - Components: connected components, each listed in ascending node order
//     and ordered by smallest member.
//
// Every function is total: a nil or empty graph yields empty results and
// isolated nodes get zero counts. Self-loops count once toward degree and
// never produce a second-hop neighbor.
//
// Complexity (V = nodes, E = edges, d = max degree)
//
//   - Degrees, DegreeDistribution: O(V)
//   - SecondHop: O(Σ_v Σ_{u∈N(v)} deg(u)) ≤ O(V·d²), memory O(V) per call
//   - Components: O(V + E)
//
// The functions take one Adjacency snapshot and never lock the graph again.
package metrics
