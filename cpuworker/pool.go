package cpuworker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// VertexFunc processes one local vertex; its own edge iteration must stay
// serial (the parallelism lives entirely in the outer loop that calls it).
type VertexFunc func(ctx context.Context, v uint32) error

// Pool fans a vertex-indexed loop out across a fixed number of goroutines.
type Pool struct {
	opts poolOptions
}

// NewPool constructs a Pool.
func NewPool(opts ...Option) (*Pool, error) {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Pool{opts: o}, nil
}

// ForEachVertex partitions [0, numLocal) into contiguous chunks, one per
// worker, and runs fn over each vertex in a chunk serially. Chunks across
// workers run concurrently; the call blocks until every chunk completes or
// one returns an error (the first such error is returned; the rest of the
// work is still drained by errgroup's context cancellation).
func (p *Pool) ForEachVertex(ctx context.Context, numLocal uint32, fn VertexFunc) error {
	if numLocal == 0 {
		return nil
	}

	workers := p.opts.numWorkers
	if workers > int(numLocal) {
		workers = int(numLocal)
	}

	chunk := (int(numLocal) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > int(numLocal) {
			end = int(numLocal)
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for v := start; v < end; v++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(gctx, uint32(v)); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
