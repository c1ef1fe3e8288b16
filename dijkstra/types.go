// Package dijkstra defines core types and configuration options
// for the unit-cost shortest-path engine.
//
// The engine computes, for one source node, the minimum hop distance and one
// representative shortest path to every node of the source's component.
// Every edge costs exactly one hop.
//
// Options:
//
//	– WithTieBreak:    which recorded predecessor path reconstruction follows.
//	– WithMaxDistance: optional cap on hop distance; nodes beyond stay unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadTieBreak     if the tie-break policy is unknown.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance recorded for nodes the source cannot reach.
const Unreachable = math.MaxInt

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadTieBreak indicates an unknown TieBreak value.
	ErrBadTieBreak = errors.New("dijkstra: unknown tie-break policy")
)

// TieBreak selects which predecessor path reconstruction follows when a node
// has several predecessors at the same distance. Every policy yields a valid
// shortest path; they differ only in which one.
type TieBreak int

const (
	// TieFirstDiscovered follows the earliest-recorded predecessor, which is
	// the node's breadth-first parent. It is reproducible for a fixed
	// edge-insertion order.
	TieFirstDiscovered TieBreak = iota

	// TieLowestIndex follows the predecessor with the smallest node index,
	// which makes the chosen path independent of edge-insertion order.
	TieLowestIndex
)

// String returns the configuration name of the policy ("first", "lowest").
func (t TieBreak) String() string {
	switch t {
	case TieFirstDiscovered:
		return "first"
	case TieLowestIndex:
		return "lowest"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "first" and "lowest" to their TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "first", "":
		return TieFirstDiscovered, nil
	case "lowest":
		return TieLowestIndex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadTieBreak, s)
	}
}

// Options configures the behavior of the engine.
//
// TieBreak    – predecessor choice during reconstruction. Default TieFirstDiscovered.
// MaxDistance – hop cap; must be ≥ 0. Default Unreachable (no cap).
type Options struct {
	TieBreak    TieBreak
	MaxDistance int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and first-discovered
// tie-breaking.
func DefaultOptions() Options {
	return Options{
		TieBreak:    TieFirstDiscovered,
		MaxDistance: Unreachable,
	}
}

// WithTieBreak selects the reconstruction policy.
// Unknown values are reported as ErrBadTieBreak when Dijkstra runs.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieFirstDiscovered && t != TieLowestIndex {
			o.err = fmt.Errorf("%w: %d", ErrBadTieBreak, int(t))
			return
		}
		o.TieBreak = t
	}
}

// WithMaxDistance sets a maximum hop distance. Nodes whose shortest distance
// would exceed it are reported unreachable.
// Negative values are reported as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Triple is one (source, target, path) entry of an all-sources pass.
// Path runs from Source to Target inclusive and is never empty.
type Triple struct {
	Source int
	Target int
	Path   []int
}

// Result is the outcome of one single-source run.
//
//   - Dist[v]:  hop distance from Source, or Unreachable.
//   - Pred[v]:  every predecessor that reached v at Dist[v], in discovery order.
//     Empty for the source and for unreachable nodes.
//   - paths[v]: the representative path Source→v, empty for the source itself
//     and for unreachable nodes.
type Result struct {
	Source int
	Dist   []int
	Pred   [][]int

	paths [][]int
}

// Len returns the node count the result was computed over.
func (r *Result) Len() int { return len(r.Dist) }

// Reachable reports whether v is reachable from the source (the source
// itself included).
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// Distance returns the hop distance to v and whether v is reachable.
func (r *Result) Distance(v int) (int, bool) {
	if !r.Reachable(v) {
		return Unreachable, false
	}

	return r.Dist[v], true
}

// Predecessors returns a copy of v's recorded predecessor list.
func (r *Result) Predecessors(v int) []int {
	if v < 0 || v >= len(r.Pred) {
		return nil
	}
	out := make([]int, len(r.Pred[v]))
	copy(out, r.Pred[v])

	return out
}

// PathTo returns a copy of the representative path to v. The path is empty
// when v is the source, unreachable or out of range.
func (r *Result) PathTo(v int) []int {
	if v < 0 || v >= len(r.paths) {
		return []int{}
	}
	out := make([]int, len(r.paths[v]))
	copy(out, r.paths[v])

	return out
}

// Paths returns the representative paths indexed by target. The inner slices
// are shared with the Result and must be treated as read-only.
func (r *Result) Paths() [][]int { return r.paths }

// Triples returns one Triple per target with a non-empty path, in ascending
// target order. Paths are shared with the Result (read-only by convention).
func (r *Result) Triples() []Triple {
	out := make([]Triple, 0, len(r.paths))
	for t, p := range r.paths {
		if len(p) == 0 {
			continue
		}
		out = append(out, Triple{Source: r.Source, Target: t, Path: p})
	}

	return out
}
