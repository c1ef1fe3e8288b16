// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2, else ErrTooFewVertices.
//   • Emits every unordered pair i<j, i ascending then j ascending.
//
// Complexity: O(n²) time, n(n-1)/2 edges.

package builder

import "github.com/katalvlaran/hopgraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
