package bc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hybridbc/engine/bspengine"
	"github.com/hybridbc/engine/partition"
	"github.com/hybridbc/engine/sampler"
)

// BetweennessHybrid computes betweenness centrality over g, writing into
// out (caller-allocated, length V_total). epsilon == bc.Exact requests
// exact BC (every vertex is a source); otherwise the configured sampler
// chooses a subset of sources uniformly (spec.md §4.7, §6). Trivial graphs
// (0 or 1 vertex) short-circuit to a zero-filled out (spec.md §7).
func BetweennessHybrid(ctx context.Context, g partition.PartitionedGraph, epsilon float64, out []float64, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	if g == nil || g.NumPartitions() == 0 {
		return nil
	}

	bcctx, err := NewBcContext(g, o)
	if err != nil {
		return err
	}

	if len(out) != bcctx.totalVertices {
		return fmt.Errorf("%w: out has length %d, want %d", ErrPrecondition, len(out), bcctx.totalVertices)
	}

	if bcctx.totalVertices <= 1 {
		for i := range out {
			out[i] = 0
		}

		return nil
	}

	bcctx.run.Epsilon = epsilon

	sources, err := bcctx.sourceList(epsilon)
	if err != nil {
		return err
	}
	if epsilon != Exact {
		bcctx.run.NumSamples = len(sources)
	}

	for i, flat := range sources {
		pid, local := bcctx.flatToLocal(flat)
		bcctx.run.srcPid = pid
		bcctx.run.srcLocal = local
		bcctx.run.Source = partition.Encode(uint32(pid), local)
		bcctx.run.isLastSource = i == len(sources)-1

		for p := 0; p < bcctx.numPartitions; p++ {
			bcctx.states[p].ResetForSource()
		}
		bcctx.fabric.ResetAll()

		if err := bcctx.runRound(ctx, "forward", bcctx.forwardConfig()); err != nil {
			return err
		}
		if err := bcctx.runRound(ctx, "distance-sync", bcctx.distanceSyncConfig()); err != nil {
			return err
		}
		if err := bcctx.runRound(ctx, "numSPs-sync", bcctx.numSPsSyncConfig()); err != nil {
			return err
		}
		if err := bcctx.runRound(ctx, "backward", bcctx.backwardConfig()); err != nil {
			return err
		}
	}

	bcctx.finalizeScale(out)

	return nil
}

func (bc *BcContext) runRound(ctx context.Context, name string, cfg bspengine.Config) error {
	start := time.Now()
	if err := bc.engine.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("round %s: %w", name, err)
	}
	for s := 0; s < bc.engine.Superstep(); s++ {
		bc.recorder().ObserveSuperstep(bc.runID, name)
	}
	bc.recorder().ObserveRoundDuration(bc.runID, name, time.Since(start))
	bc.progress("run=%s source=%d round=%s supersteps=%d elapsed=%s", bc.runID, uint64(bc.run.Source), name, bc.engine.Superstep(), time.Since(start))

	return nil
}

// sourceList returns the flattened vertex indices to run as sources:
// every vertex for exact mode, or a sampled subset otherwise.
func (bc *BcContext) sourceList(epsilon float64) ([]int, error) {
	if epsilon == Exact {
		all := make([]int, bc.totalVertices)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}

	k := sampler.RecommendSampleSize(bc.totalVertices, bc.totalEdges)
	idx, err := bc.opts.Sampler.Sample(bc.totalVertices, k)
	if err != nil {
		return nil, fmt.Errorf("%w: sampler: %v", ErrAllocation, err)
	}
	sort.Ints(idx)

	return idx, nil
}

// flatToLocal translates a flattened [0, totalVertices) index back into
// its owning partition and local vid.
func (bc *BcContext) flatToLocal(flat int) (pid int, local uint32) {
	for p := bc.numPartitions - 1; p >= 0; p-- {
		if flat >= bc.partitionOffset[p] {
			return p, uint32(flat - bc.partitionOffset[p])
		}
	}

	return 0, uint32(flat)
}
