// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (hub plus a rim cycle of at least 3), else ErrTooFewVertices.
//   • Hub is local node 0, the rim is 1..n-1.
//   • Emission order: rim edges i-i+1 (closing (n-1)-1), then spokes 0-i.
//
// Complexity: O(n) time, 2(n-1) edges.

package builder

import "github.com/katalvlaran/hopgraph/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a hub joined to every node of
// an (n-1)-cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(methodWheel, g, cfg, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodWheel, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
