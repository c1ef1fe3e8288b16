// Package dijkstra implements the unit-cost shortest-path engine.
//
// It is Dijkstra's algorithm with a min-heap and lazy deletion, specialised to
// graphs where every edge costs one hop, which makes it equivalent to a
// breadth-first search. Unlike a plain BFS it records every predecessor that
// ties for the shortest distance, so callers can see path multiplicity, and it
// reconstructs one representative path per reachable node.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for distances, predecessor lists, paths and heap entries.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/hopgraph/core"
)

// Dijkstra computes hop distances, predecessor lists and representative
// shortest paths from source to every node of g.
//
// A source outside the node space (including a negative one) is not an error:
// every node is reported unreachable and every path is empty.
//
// Errors: ErrNilGraph, ErrBadMaxDistance, ErrBadTieBreak.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return Run(g.Adjacency(), source, opts...)
}

// Run is Dijkstra over an adjacency snapshot as returned by
// core.Graph.Adjacency. The all-sources pass takes the snapshot once and calls
// Run for each source; adj is only read.
func Run(adj [][]int, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Allocate result state sized to the node space.
	n := len(adj)
	r := &runner{
		adj:     adj,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make([]int, n),
			Pred:   make([][]int, n),
			paths:  make([][]int, n),
		},
	}

	// 3) Initialize distances and run the main loop.
	r.init()
	if source >= 0 && source < n {
		r.process()
	}

	// 4) Rebuild one path per reachable node.
	r.reconstruct()

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	adj     [][]int
	options Options
	res     *Result
	pq      nodePQ
	seq     int // push counter, orders equal-distance entries
}

// init sets every distance to Unreachable and, for a valid source, seeds the
// heap with (0, source).
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.paths[v] = []int{}
	}
	src := r.res.Source
	if src < 0 || src >= len(r.res.Dist) {
		return
	}
	r.res.Dist[src] = 0
	r.pq = make(nodePQ, 0, len(r.adj))
	r.push(src, 0)
}

// push adds (dist, node) to the heap stamped with the next sequence number.
func (r *runner) push(node, dist int) {
	heap.Push(&r.pq, nodeItem{node: node, dist: dist, seq: r.seq})
	r.seq++
}

// process pops the closest node until the heap is empty.
//
// Entries whose distance exceeds the recorded best are stale leftovers of an
// earlier push that was later improved; they are discarded (lazy deletion).
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.dist > r.res.Dist[item.node] {
			continue
		}
		r.relax(item.node, item.dist)
	}
}

// relax scans u's neighbors once with candidate distance d+1.
//
//   - candidate <  best: new best, push, predecessor list reset to [u].
//   - candidate == best: u appended as an additional tying predecessor.
//
// Adjacency is already symmetric, so one pass over u's sequence covers both
// directions of every incident edge.
func (r *runner) relax(u, d int) {
	cand := d + 1
	if cand > r.options.MaxDistance {
		return
	}
	dist := r.res.Dist
	for _, v := range r.adj[u] {
		switch {
		case cand < dist[v]:
			dist[v] = cand
			r.res.Pred[v] = append(r.res.Pred[v][:0], u)
			r.push(v, cand)
		case cand == dist[v]:
			r.res.Pred[v] = append(r.res.Pred[v], u)
		}
	}
}

// reconstruct walks each reachable node back to the source along the chosen
// predecessor and stores the reversed walk as its path.
func (r *runner) reconstruct() {
	src := r.res.Source
	for t := range r.res.paths {
		if len(r.res.Pred[t]) == 0 {
			continue // source itself or unreachable
		}
		path := make([]int, 0, r.res.Dist[t]+1)
		for cur := t; ; {
			path = append(path, cur)
			if cur == src {
				break
			}
			cur = r.pick(r.res.Pred[cur])
		}
		reverse(path)
		r.res.paths[t] = dedupe(path)
	}
}

// pick applies the tie-break policy to a non-empty predecessor list.
func (r *runner) pick(preds []int) int {
	if r.options.TieBreak == TieLowestIndex {
		best := preds[0]
		for _, p := range preds[1:] {
			if p < best {
				best = p
			}
		}
		return best
	}

	return preds[0]
}

// reverse reverses s in place.
func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// dedupe collapses runs of equal adjacent entries in place.
// A correct predecessor chain never produces one; the pass keeps the path
// contract independent of that.
func dedupe(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// nodeItem is a (distance, node) heap entry; seq is its push order.
type nodeItem struct {
	node int
	dist int
	seq  int
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq) ascending.
// Equal distances pop first-in first-out, which is exactly breadth-first
// discovery order: the first recorded predecessor of every node is its BFS
// parent.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
