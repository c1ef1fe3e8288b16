// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil (pure/deterministic unless seeded)
//   • offset = 0   (constructors number nodes from 0)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// offset is added to every node index a constructor emits.
	offset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// node maps a constructor-local index to its graph index.
func (c builderConfig) node(i int) int {
	return c.offset + i
}
