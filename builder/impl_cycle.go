// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/hopgraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		// for i==n-1, connect to 0 to close the ring
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
