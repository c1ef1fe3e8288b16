// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1) for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/hopgraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
