// SPDX-License-Identifier: MIT
//
// File: betweenness.go
// Role: approximate betweenness over representative shortest paths.

package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/dijkstra"
)

// Betweenness folds a materialized triple collection into normalized
// scores over n nodes. The result does not depend on the order of triples.
func Betweenness(triples []dijkstra.Triple, n int) map[int]float64 {
	acc := NewAccumulator(n)
	for _, t := range triples {
		acc.AddTriple(t)
	}

	return acc.Scores()
}

// AllPaths runs the engine from every node in ascending index order and
// returns every (source, target, path) triple with a non-empty path, ordered
// by source then target. It runs serially; Workers is ignored.
func AllPaths(ctx context.Context, g *core.Graph, opts ...Option) ([]dijkstra.Triple, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	adj := g.Adjacency()
	n := len(adj)
	var out []dijkstra.Triple
	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := dijkstra.Run(adj, s, dijkstra.WithTieBreak(o.TieBreak))
		if err != nil {
			return nil, fmt.Errorf("centrality: source %d: %w", s, err)
		}
		out = append(out, res.Triples()...)
		if o.Progress != nil {
			o.Progress(s+1, n)
		}
	}

	return out, nil
}

// ApproxBetweenness runs the engine from every node and folds the
// representative paths into an Accumulator without materializing them.
//
// Sources are spread over WithWorkers goroutines, each with a private
// Accumulator; the partial accumulators are merged in worker order after all
// workers finish. Cancelling ctx stops the workers before their next source
// and returns ctx.Err().
func ApproxBetweenness(ctx context.Context, g *core.Graph, opts ...Option) (*Accumulator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	adj := g.Adjacency()
	n := len(adj)
	k := o.Workers
	if k > n {
		k = n
	}
	partial := make([]*Accumulator, k)
	for w := range partial {
		partial[w] = NewAccumulator(n)
	}

	err = forEachSource(ctx, n, o, func(w, s int) error {
		res, err := dijkstra.Run(adj, s, dijkstra.WithTieBreak(o.TieBreak))
		if err != nil {
			return fmt.Errorf("centrality: source %d: %w", s, err)
		}
		partial[w].AddResult(res)

		return nil
	})
	if err != nil {
		return nil, err
	}

	acc := NewAccumulator(n)
	for _, p := range partial {
		acc.Merge(p)
	}

	return acc, nil
}
