// SPDX-License-Identifier: MIT
//
// File: degree.go
// Role: Degrees and the degree histogram.

package metrics

import "github.com/katalvlaran/hopgraph/core"

// Degrees returns deg(v) for every node 0..N-1.
// A nil graph yields nil.
func Degrees(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = g.Degree(v)
	}

	return out
}

// DegreeDistribution maps each degree occurring in g to the number of nodes
// having it. Isolated nodes are reported under degree 0.
func DegreeDistribution(g *core.Graph) map[int]int {
	hist := make(map[int]int)
	for _, d := range Degrees(g) {
		hist[d]++
	}

	return hist
}
