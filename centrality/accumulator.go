// SPDX-License-Identifier: MIT
//
// File: accumulator.go
// Role: interior-occurrence counting and score normalization.

package centrality

import "github.com/katalvlaran/hopgraph/dijkstra"

// Accumulator counts how often each node lies strictly inside a
// representative shortest path. It is not safe for concurrent use; give each
// worker its own and Merge them afterwards.
type Accumulator struct {
	n      int
	counts []int
	paths  int
}

// NewAccumulator returns an empty accumulator normalizing over n nodes.
// Negative n is treated as 0.
func NewAccumulator(n int) *Accumulator {
	if n < 0 {
		n = 0
	}

	return &Accumulator{n: n, counts: make([]int, n)}
}

// N returns the node count used for normalization.
func (a *Accumulator) N() int { return a.n }

// Paths returns the number of paths folded in so far, including paths too
// short to have interior nodes.
func (a *Accumulator) Paths() int { return a.paths }

// Add counts every node strictly between the first and last element of path.
// Paths with fewer than three nodes contribute nothing. Negative indices are
// ignored; indices beyond N grow the counter space without changing N.
func (a *Accumulator) Add(path []int) {
	if len(path) == 0 {
		return
	}
	a.paths++
	for i := 1; i < len(path)-1; i++ {
		v := path[i]
		if v < 0 {
			continue
		}
		a.grow(v + 1)
		a.counts[v]++
	}
}

// AddTriple folds t.Path.
func (a *Accumulator) AddTriple(t dijkstra.Triple) {
	a.Add(t.Path)
}

// AddResult folds every reconstructed path of one source.
func (a *Accumulator) AddResult(r *dijkstra.Result) {
	if r == nil {
		return
	}
	for _, p := range r.Paths() {
		a.Add(p)
	}
}

// Merge adds other's counts into a. N is left unchanged.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	a.grow(len(other.counts))
	for v, c := range other.counts {
		a.counts[v] += c
	}
	a.paths += other.paths
}

// Count returns the interior occurrences of v, 0 when v was never counted.
func (a *Accumulator) Count(v int) int {
	if v < 0 || v >= len(a.counts) {
		return 0
	}

	return a.counts[v]
}

// Counts returns the non-zero occurrence counts.
func (a *Accumulator) Counts() map[int]int {
	out := make(map[int]int)
	for v, c := range a.counts {
		if c > 0 {
			out[v] = c
		}
	}

	return out
}

// Scores normalizes the non-zero counts by N·(N−1). With N < 2 there are
// no ordered pairs and the map is empty.
func (a *Accumulator) Scores() map[int]float64 {
	out := make(map[int]float64)
	if a.n < 2 {
		return out
	}
	denom := float64(a.n) * float64(a.n-1)
	for v, c := range a.counts {
		if c > 0 {
			out[v] = float64(c) / denom
		}
	}

	return out
}

func (a *Accumulator) grow(size int) {
	if size <= len(a.counts) {
		return
	}
	grown := make([]int, size)
	copy(grown, a.counts)
	a.counts = grown
}
