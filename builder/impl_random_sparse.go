// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p ∈ {0,1} draws nothing from the RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i); one rng.Float64 per trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
//
// The node space is defined by edges, so trailing nodes that drew no edge
// would not exist. The constructor therefore guarantees only that every
// sampled edge is present; callers that need exactly n nodes should overlay
// a spanning constructor such as Path(n).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng != nil && p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
