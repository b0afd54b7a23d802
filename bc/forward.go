package bc

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hybridbc/engine/bspengine"
	"github.com/hybridbc/engine/grooves"
	"github.com/hybridbc/engine/partition"
	"github.com/hybridbc/engine/warp"
)

// forwardConfig builds the bspengine.Config driving one source's forward
// round (spec.md §4.3): PUSH direction, Init seeds the source vertex,
// Kernel relaxes distance/numSPs, Scatter applies the double-guard to
// inbound push messages and advances level exactly once per superstep.
func (bc *BcContext) forwardConfig() bspengine.Config {
	return bspengine.Config{
		Direction: grooves.PUSH,
		Init:      bc.forwardInit,
		Kernel:    bc.forwardKernel,
		Scatter:   bc.forwardScatter,
		Exchange: func(ctx context.Context) error {
			bc.fabric.CommitPushAll()

			return nil
		},
	}
}

func (bc *BcContext) forwardInit(ctx context.Context, pid int) error {
	if pid != bc.run.srcPid {
		return nil
	}

	return bc.states[pid].SeedSource(bc.run.srcLocal)
}

func (bc *BcContext) forwardKernel(ctx context.Context, pid int) error {
	st := bc.states[pid]
	csr := bc.graph.CSR(pid)
	level := int32(st.Level)
	d := st.LocalDistance()

	switch bc.graph.ProcessorType(pid) {
	case partition.CPU:
		pool := bc.cpuPools[pid]
		var found atomic.Bool
		err := pool.ForEachVertex(ctx, st.NumLocal, func(ctx context.Context, v uint32) error {
			if partition.LoadDistance(d, v) != level {
				return nil
			}
			for _, nbr := range csr.Neighbors(v) {
				edgeFound, err := bc.forwardEdge(pid, st, v, nbr)
				if err != nil {
					return err
				}
				if edgeFound {
					found.Store(true)
				}
			}

			return nil
		})
		if err != nil {
			return err
		}
		if found.Load() {
			bc.engine.ReportNotFinished(pid)
		}

		return nil
	case partition.Accelerator:
		frontier := warp.BuildFrontier(st)
		width := warp.WidthFor(bc.graph.Algorithm(pid))
		maxThreads := bc.opts.VirtualWarpMaxThreads
		if maxThreads == 0 {
			maxThreads = warp.MaxThreadsPerBlock
		}
		found, err := warp.ProcessFrontier(ctx, frontier, csr, width, maxThreads, func(ctx context.Context, v uint32, nbr partition.VertexID) (bool, error) {
			return bc.forwardEdge(pid, st, v, nbr)
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWorkerFailure, err)
		}
		if found {
			bc.engine.ReportNotFinished(pid)
		}

		return nil
	default:
		return fmt.Errorf("%w: partition %d has unknown processor type", ErrPrecondition, pid)
	}
}

// forwardEdge applies the forward kernel contract to a single (v, nbr)
// edge. Local neighbors use the CAS-based distance guard directly; remote
// neighbors push numSPs[v] unconditionally (spec.md's local distance[nbr]
// check is not reproducible for a remote neighbor without a synchronous
// cross-partition read, so the owning partition's own Scatter applies the
// double guard once the push is delivered — see DESIGN.md).
func (bc *BcContext) forwardEdge(pid int, st *partition.State, v uint32, nbr partition.VertexID) (bool, error) {
	nbrPid, nbrLocal := nbr.Decode()
	level := int32(st.Level)

	if int(nbrPid) == pid {
		d := st.LocalDistance()
		found := partition.CompareAndSwapDistance(d, nbrLocal, partition.Inf, level+1)
		if partition.LoadDistance(d, nbrLocal) == level+1 {
			partition.AtomicAddNumSPs(st.LocalNumSPs(), nbrLocal, st.LocalNumSPs()[v])
		}

		return found, nil
	}

	idx, ok := bc.boundaryIndex[pairKey{pid, int(nbrPid)}][nbrLocal]
	if !ok {
		return false, fmt.Errorf("%w: local vid %d not registered in boundary (%d,%d)", ErrPrecondition, nbrLocal, pid, nbrPid)
	}
	b := bc.fabric.Boundary(pid, int(nbrPid))
	if b == nil {
		return false, fmt.Errorf("%w: no boundary from partition %d to %d", ErrPrecondition, pid, nbrPid)
	}
	grooves.AtomicAddUint32(b.Push.Values, idx, st.LocalNumSPs()[v])
	// The remote partition has pending work to scatter next superstep,
	// even though this partition itself may appear finished.
	bc.engine.ReportNotFinished(int(nbrPid))

	return false, nil
}

// forwardScatter consumes every inbox delivered at the last superstep
// boundary, applying the double guard from spec.md §4.3, then advances
// level exactly once for this partition this superstep.
func (bc *BcContext) forwardScatter(ctx context.Context, pid int) error {
	st := bc.states[pid]
	level := int32(st.Level)
	d := st.LocalDistance()

	for _, p := range bc.incomingPairs[pid] {
		b := bc.fabric.Boundary(p, pid)
		for i, val := range b.PushIn.Values {
			if val == 0 {
				continue
			}
			vid := b.RmtNbrs[i]
			if partition.CompareAndSwapDistance(d, vid, partition.Inf, level) {
				bc.engine.ReportNotFinished(pid)
			}
			if partition.LoadDistance(d, vid) == level {
				partition.AtomicAddNumSPs(st.LocalNumSPs(), vid, val)
			}
		}
	}

	st.Level++

	return nil
}
