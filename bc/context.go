package bc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hybridbc/engine/bspengine"
	"github.com/hybridbc/engine/cpuworker"
	"github.com/hybridbc/engine/grooves"
	"github.com/hybridbc/engine/metrics"
	"github.com/hybridbc/engine/partition"
)

type pairKey struct{ p, q int }

// BcContext is the typed, threaded-through-hooks replacement for spec.md's
// global bc_g (spec.md §9). It owns every partition's State, the grooves
// Fabric connecting them, the shared bspengine.Engine, and a per-CPU-
// partition worker pool.
type BcContext struct {
	graph partition.PartitionedGraph
	opts  Options
	runID string

	numPartitions int
	states        []*partition.State
	fabric        *grooves.Fabric
	engine        *bspengine.Engine
	cpuPools      map[int]*cpuworker.Pool

	// boundaryIndex[{p,q}][localVidOnQ] = slot index into the (p,q)
	// boundary's buffers and into p's remote State mirrors for q. Built
	// once from graph.BoundaryMap(p, q), since that call is out-of-scope
	// cost-wise to repeat every superstep.
	boundaryIndex map[pairKey]map[uint32]int

	// incomingPairs[pid] lists every p with a registered (p, pid)
	// boundary (pid is the boundary owner / gatherer).
	incomingPairs map[int][]int

	// outgoingPairs[pid] lists every q with a registered (pid, q)
	// boundary (pid is the boundary's reader).
	outgoingPairs map[int][]int

	totalVertices int
	totalEdges    int

	// partitionOffset[p] is the flattened source-index offset of
	// partition p's local vertex 0 (a prefix sum of NumLocal across
	// partitions), used to enumerate sources as a single [0,
	// totalVertices) range for exact mode and the sampler.
	partitionOffset []int

	run runState
}

// NewBcContext builds a BcContext for graph, allocating every partition's
// State and the grooves Fabric connecting boundary pairs. opts is the
// fully-resolved Options (option parse errors are checked by the caller
// before this runs).
func NewBcContext(graph partition.PartitionedGraph, opts Options) (*BcContext, error) {
	n := graph.NumPartitions()
	if n > MaxPartitionCount {
		return nil, fmt.Errorf("%w: %d partitions exceeds MaxPartitionCount %d", ErrAllocation, n, MaxPartitionCount)
	}

	bc := &BcContext{
		graph:         graph,
		opts:          opts,
		runID:         uuid.NewString(),
		numPartitions: n,
		states:        make([]*partition.State, n),
		fabric:        grooves.NewFabric(),
		cpuPools:      make(map[int]*cpuworker.Pool),
		boundaryIndex:   make(map[pairKey]map[uint32]int),
		incomingPairs:   make(map[int][]int),
		outgoingPairs:   make(map[int][]int),
		partitionOffset: make([]int, n),
	}

	engine, err := bspengine.NewEngine(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	bc.engine = engine

	boundaryCounts := make([]map[int]uint32, n)
	for p := 0; p < n; p++ {
		boundaryCounts[p] = make(map[int]uint32)
	}

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			rmtNbrs := graph.BoundaryMap(p, q)
			if len(rmtNbrs) == 0 {
				continue
			}

			bc.fabric.SetBoundary(p, q, rmtNbrs)
			boundaryCounts[p][q] = uint32(len(rmtNbrs))

			idx := make(map[uint32]int, len(rmtNbrs))
			for i, vid := range rmtNbrs {
				idx[vid] = i
			}
			bc.boundaryIndex[pairKey{p, q}] = idx

			bc.incomingPairs[q] = append(bc.incomingPairs[q], p)
			bc.outgoingPairs[p] = append(bc.outgoingPairs[p], q)
		}
	}

	for p := 0; p < n; p++ {
		csr := graph.CSR(p)
		if csr == nil {
			return nil, fmt.Errorf("%w: partition %d has no CSR", ErrAllocation, p)
		}
		numLocal := uint32(csr.NumVertices())
		bc.states[p] = partition.NewState(p, numLocal, boundaryCounts[p])
		bc.partitionOffset[p] = bc.totalVertices
		bc.totalVertices += int(numLocal)
		bc.totalEdges += csr.NumEdges()

		switch graph.ProcessorType(p) {
		case partition.CPU, partition.Accelerator:
			// Every partition gets a cpuworker.Pool: forward's
			// edge-level discovery uses warp.ProcessFrontier on
			// Accelerator partitions (spec.md §4.3's warp-batched
			// neighbor processing), but backward's per-vertex,
			// single-owner delta accumulation (spec.md §9: "safe
			// only if delta is partitioned per outer-loop iteration")
			// has no warp-reduction analogue worth building in Go, so
			// every partition's backward kernel shares this pool's
			// plain outer-loop parallelism.
			var poolOpts []cpuworker.Option
			if opts.NumCPUWorkers > 0 {
				poolOpts = append(poolOpts, cpuworker.WithNumWorkers(opts.NumCPUWorkers))
			}
			pool, err := cpuworker.NewPool(poolOpts...)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
			}
			bc.cpuPools[p] = pool
		default:
			return nil, fmt.Errorf("%w: partition %d has unknown processor type", ErrPrecondition, p)
		}
	}

	bc.run.BetweennessScoreHost = make([]float64, bc.totalVertices)

	return bc, nil
}

func (bc *BcContext) progress(format string, args ...any) {
	if bc.opts.Verbose {
		bc.opts.Progress(format, args...)
	}
}

func (bc *BcContext) recorder() metrics.Recorder {
	return bc.opts.Metrics
}
