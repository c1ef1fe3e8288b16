// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2, else ErrTooFewVertices.
//   • Cell (r, c) is local node r·cols + c (row-major).
//   • Row-major emission: for each cell, the right edge then the down edge.
//
// Complexity: O(rows·cols) time, rows(cols-1)+cols(rows-1) edges.

package builder

import "github.com/katalvlaran/hopgraph/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		// a 1x1 grid has no edge and so no node in an edge-defined graph
		if rows*cols < 2 {
			return tooFew(methodGrid, "rows*cols", rows*cols, 2)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
