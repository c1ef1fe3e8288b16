// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (hub plus at least one leaf), else ErrTooFewVertices.
//   • Hub is local node 0; spokes 0-i are emitted for i=1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/hopgraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
