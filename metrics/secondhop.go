// SPDX-License-Identifier: MIT
//
// File: secondhop.go
// Role: counts of distinct nodes at exactly two hops.

package metrics

import "github.com/katalvlaran/hopgraph/core"

// SecondHop returns, for every node v, the number of distinct nodes w such
// that w is adjacent to some neighbor of v, w != v, and w is not itself a
// neighbor of v.
//
// The seen marks are stamped with v+1 instead of being cleared, so one
// []int of length N serves every node.
func SecondHop(g *core.Graph) []int {
	if g == nil {
		return nil
	}

	return secondHop(g.Adjacency())
}

func secondHop(adj [][]int) []int {
	n := len(adj)
	out := make([]int, n)
	mark := make([]int, n)

	for v := 0; v < n; v++ {
		stamp := v + 1
		// v and its direct neighbors are never counted
		mark[v] = stamp
		for _, u := range adj[v] {
			mark[u] = stamp
		}

		count := 0
		for _, u := range adj[v] {
			for _, w := range adj[u] {
				if mark[w] != stamp {
					mark[w] = stamp
					count++
				}
			}
		}
		out[v] = count
	}

	return out
}
