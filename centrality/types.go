// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors and functional options shared by the fan-out drivers.

package centrality

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/hopgraph/dijkstra"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrBadWorkers indicates WithWorkers received a value below 1.
	ErrBadWorkers = errors.New("centrality: workers must be >= 1")
)

// Options configures the all-sources drivers.
type Options struct {
	// Workers is the number of goroutines processing sources. Default GOMAXPROCS.
	Workers int

	// TieBreak is forwarded to the shortest-path engine.
	TieBreak dijkstra.TieBreak

	// Progress, if non-nil, is called after each finished source with the
	// number of finished sources and the total. Calls are serialized.
	Progress func(done, total int)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: GOMAXPROCS workers, first-discovered
// tie-break, no progress callback.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		TieBreak: dijkstra.TieFirstDiscovered,
	}
}

// WithWorkers sets the fan-out width. k < 1 yields ErrBadWorkers.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, k)
			return
		}
		o.Workers = k
	}
}

// WithTieBreak selects the representative-path policy of the engine.
func WithTieBreak(tb dijkstra.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithProgress installs a per-source progress callback.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// buildOptions applies opts over the defaults and returns the first
// recorded error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
