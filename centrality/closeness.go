// SPDX-License-Identifier: MIT
//
// File: closeness.go
// Role: closeness centrality from breadth-first hop distances.

package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
)

// Closeness returns 1/Σdist(v,u) over every u reachable from v, u != v, for
// every node v. Nodes that reach nothing, isolated ones included, score 0.
// Every node 0..N-1 is present in the map. TieBreak is ignored.
func Closeness(ctx context.Context, g *core.Graph, opts ...Option) (map[int]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	adj := g.Adjacency()
	n := len(adj)
	scores := make([]float64, n)

	err = forEachSource(ctx, n, o, func(_, s int) error {
		res, err := bfs.Run(adj, s)
		if err != nil {
			return fmt.Errorf("centrality: source %d: %w", s, err)
		}
		if sum, _ := res.DistanceSum(); sum > 0 {
			scores[s] = 1 / float64(sum)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int]float64, n)
	for v, c := range scores {
		out[v] = c
	}

	return out, nil
}
