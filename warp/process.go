package warp

import (
	"context"
	"sync/atomic"

	"github.com/hybridbc/engine/partition"
	"golang.org/x/sync/errgroup"
)

// EdgeFunc processes one (vertex, neighbor) edge discovered by a virtual
// warp lane. It returns whether processing this edge found new work (a
// previously-INF vertex got discovered, or an atomic add landed) — the
// aggregate of every lane's answer is what ProcessFrontier reports back,
// mirroring the spec's block-shared finished_block flag that only a single
// thread ultimately propagates to the global done pointer.
type EdgeFunc func(ctx context.Context, v uint32, nbr partition.VertexID) (foundWork bool, err error)

type lane struct {
	v    uint32
	lane int
}

// ProcessFrontier cooperatively processes every frontier vertex's edge
// list with a virtual warp of the given width: lane L handles edges at
// indices L, L+width, L+2*width, ... within that vertex's neighbor slice.
// Work is distributed across at most maxThreads goroutines.
func ProcessFrontier(ctx context.Context, frontier []uint32, csr *partition.CSR, width, maxThreads int, fn EdgeFunc) (bool, error) {
	if len(frontier) == 0 || width <= 0 {
		return false, nil
	}

	tasks := make(chan lane, len(frontier)*width)
	for _, v := range frontier {
		for l := 0; l < width; l++ {
			tasks <- lane{v: v, lane: l}
		}
	}
	close(tasks)

	workers := maxThreads
	if workers <= 0 || workers > len(frontier)*width {
		workers = len(frontier) * width
	}

	var found atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for t := range tasks {
				nbrs := csr.Neighbors(t.v)
				for idx := t.lane; idx < len(nbrs); idx += width {
					if err := gctx.Err(); err != nil {
						return err
					}
					fw, err := fn(gctx, t.v, nbrs[idx])
					if err != nil {
						return err
					}
					if fw {
						found.Store(true)
					}
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	return found.Load(), nil
}
