// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All topology factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is BuildGraph
// without the allocation, for callers that assemble a graph in stages.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// Shifted returns con with every emitted node index moved up by k.
// Shifts nest: Shifted(2, Shifted(3, Path(2))) emits 5-6.
// A negative k is reported as ErrTooFewVertices when the constructor runs.
func Shifted(k int, con Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("Shifted: k=%d < 0: %w", k, ErrTooFewVertices)
		}
		if con == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += k

		return con(g, cfg)
	}
}

// addEdge inserts the local edge (i, j) at the configured offset and tags
// failures with the constructor name.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.node(i), cfg.node(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// tooFew formats the shared size-validation error.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
