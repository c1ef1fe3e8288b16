package bfs

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
//
// A source outside the node space is not an error: the result simply has
// every node Unreached and an empty Order.
// Returns ErrGraphNil, ErrOptionViolation, ctx.Err() on cancellation, or any
// user-supplied hook error.
func BFS(g *core.Graph, source int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return Run(g.Adjacency(), source, opts...)
}

// Run is BFS over an adjacency snapshot as returned by core.Graph.Adjacency.
// Callers that search from many sources take the snapshot once and call Run.
func Run(adj [][]int, source int, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(adj)
	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Source: source,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}
	if source < 0 || source >= n {
		return w.res, nil
	}

	// Seed queue with source (no parent)
	w.enqueue(source, 0, Unreached)

	return w.res, w.loop()
}

// enqueue records depth and parent of v and appends it to the queue.
func (w *walker) enqueue(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, v := range w.adj[u] {
			// first time seen?
			if w.res.Depth[v] == Unreached {
				w.enqueue(v, next, u)
			}
		}
	}

	return nil
}
