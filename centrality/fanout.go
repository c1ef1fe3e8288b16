// SPDX-License-Identifier: MIT
//
// File: fanout.go
// Role: bounded all-sources worker pool on errgroup.

package centrality

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// forEachSource calls visit(worker, s) for every source 0..n-1 on
// min(o.Workers, n) goroutines. Worker w handles s = w, w+k, w+2k, ... so the
// assignment depends only on n and k. The first error cancels the remaining
// workers; ctx is checked before every source.
func forEachSource(ctx context.Context, n int, o Options, visit func(worker, s int) error) error {
	k := o.Workers
	if k > n {
		k = n
	}
	if k < 1 {
		return ctx.Err()
	}

	var (
		mu   sync.Mutex
		done int
	)
	tick := func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		if o.Progress != nil {
			o.Progress(done, n)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < k; w++ {
		w := w // per-iteration copy (pre-Go 1.22 loop semantics)
		eg.Go(func() error {
			for s := w; s < n; s += k {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := visit(w, s); err != nil {
					return err
				}
				tick()
			}

			return nil
		})
	}

	return eg.Wait()
}
