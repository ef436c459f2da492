package stamp

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel splits the index range [0, n) into contiguous chunks, one
// per worker, and runs fn on each concurrently. Workers below one
// means one per processor. Conversion throughput is memory-bound and
// the drivers are independent per element, so chunking an input array
// and writing disjoint ranges of a shared output is safe; each worker
// should build its own tz.Resolver.
//
// The first error stops the remaining chunks from starting and is
// returned after all running chunks finish. A canceled ctx has the
// same effect.
func Parallel(ctx context.Context, n, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		return fn(0, n)
	}

	g, ctx := errgroup.WithContext(ctx)
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
