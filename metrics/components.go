// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: connected components by breadth-first flooding.

package metrics

import (
	"sort"

	"github.com/katalvlaran/hopgraph/core"
)

// Component is one maximal set of mutually reachable nodes.
type Component struct {
	Nodes []int // ascending
}

// Size returns the number of nodes in the component.
func (c Component) Size() int { return len(c.Nodes) }

// Components floods g breadth-first from every unseen node in ascending
// index order. Isolated nodes form singleton components.
//
// Time:   O(V + E).
// Memory: O(V) for seen flags and the shared queue.
func Components(g *core.Graph) []Component {
	if g == nil {
		return nil
	}
	adj := g.Adjacency()
	seen := make([]bool, len(adj))
	queue := make([]int, 0, len(adj))
	var comps []Component

	for s := range adj {
		if seen[s] {
			continue
		}
		queue = append(queue[:0], s)
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		nodes := append([]int(nil), queue...)
		sort.Ints(nodes)
		comps = append(comps, Component{Nodes: nodes})
	}

	return comps
}

// Largest returns the size of the biggest component, 0 when comps is empty.
func Largest(comps []Component) int {
	best := 0
	for _, c := range comps {
		if c.Size() > best {
			best = c.Size()
		}
	}

	return best
}
