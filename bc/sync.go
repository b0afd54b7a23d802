package bc

import (
	"context"

	"github.com/hybridbc/engine/bspengine"
	"github.com/hybridbc/engine/grooves"
	"github.com/hybridbc/engine/partition"
)

// distanceSyncConfig builds the two-superstep PULL round that mirrors
// every partition's authoritative local distance into every remote
// partition's boundary view, before backward can run (spec.md §4.4).
func (bc *BcContext) distanceSyncConfig() bspengine.Config {
	return bspengine.Config{
		Direction: grooves.PULL,
		Kernel:    bc.distanceSyncKernel,
		Gather:    bc.distanceSyncGather,
		Exchange: func(ctx context.Context) error {
			bc.fabric.CommitDistPullAll()

			return nil
		},
	}
}

func (bc *BcContext) distanceSyncGather(ctx context.Context, pid int) error {
	st := bc.states[pid]
	d := st.LocalDistance()
	for _, p := range bc.incomingPairs[pid] {
		b := bc.fabric.Boundary(p, pid)
		for i, vid := range b.RmtNbrs {
			b.DistPull.Values[i] = partition.LoadDistance(d, vid)
		}
	}

	return nil
}

func (bc *BcContext) distanceSyncKernel(ctx context.Context, pid int) error {
	if bc.engine.Superstep() == 1 {
		bc.engine.ReportNotFinished(pid)

		return nil
	}
	st := bc.states[pid]
	for _, q := range bc.outgoingPairs[pid] {
		b := bc.fabric.Boundary(pid, q)
		copy(st.Distance[q], b.DistPullIn.Values)
	}

	return nil
}

// numSPsSyncConfig mirrors distanceSyncConfig for the numSPs array; the
// two rounds are identical in shape (spec.md §4.4, "numSPs sync").
func (bc *BcContext) numSPsSyncConfig() bspengine.Config {
	return bspengine.Config{
		Direction: grooves.PULL,
		Kernel:    bc.numSPsSyncKernel,
		Gather:    bc.numSPsSyncGather,
		Exchange: func(ctx context.Context) error {
			bc.fabric.CommitNumSPsPullAll()

			return nil
		},
	}
}

func (bc *BcContext) numSPsSyncGather(ctx context.Context, pid int) error {
	st := bc.states[pid]
	n := st.LocalNumSPs()
	for _, p := range bc.incomingPairs[pid] {
		b := bc.fabric.Boundary(p, pid)
		for i, vid := range b.RmtNbrs {
			b.NumSPsPull.Values[i] = n[vid]
		}
	}

	return nil
}

func (bc *BcContext) numSPsSyncKernel(ctx context.Context, pid int) error {
	if bc.engine.Superstep() == 1 {
		bc.engine.ReportNotFinished(pid)

		return nil
	}
	st := bc.states[pid]
	for _, q := range bc.outgoingPairs[pid] {
		b := bc.fabric.Boundary(pid, q)
		copy(st.NumSPs[q], b.NumSPsPullIn.Values)
	}

	return nil
}
