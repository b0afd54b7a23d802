package bc

import (
	"context"

	"github.com/hybridbc/engine/bspengine"
	"github.com/hybridbc/engine/grooves"
	"github.com/hybridbc/engine/partition"
)

// backwardConfig builds the PULL-direction round that accumulates
// dependency contributions level by level, descending from max_level to 1
// (spec.md §4.5). Delta is already zeroed by ResetForSource (spec.md
// invariant 4); Init corrects level's overshoot left by forward before the
// descent begins (spec.md invariant 5, "level symmetry").
func (bc *BcContext) backwardConfig() bspengine.Config {
	return bspengine.Config{
		Direction: grooves.PULL,
		Init:      bc.backwardInit,
		Kernel:    bc.backwardKernel,
		Gather:    bc.backwardGather,
		Aggr:      bc.aggregateHook,
		Exchange: func(ctx context.Context) error {
			bc.fabric.CommitDeltaPullAll()

			return nil
		},
	}
}

// backwardInit corrects level entering the backward round. Forward's
// Scatter increments level unconditionally every superstep, including the
// final converged superstep where no new vertex was found — so forward
// always leaves level at max_level+1, one past the true deepest distance
// reached, uniformly across every partition (every partition's Scatter
// runs, and therefore increments, every superstep regardless of whether
// that partition itself found work). backwardGather's first call (this
// same superstep, after this Init and the no-op Kernel) must stage the
// deepest level's (all-zero) delta at distance == level+1, so level must
// start the round at max_level-1: two less than what forward left behind.
func (bc *BcContext) backwardInit(ctx context.Context, pid int) error {
	bc.states[pid].Level -= 2

	return nil
}

// backwardKernel accumulates delta[v] for every local v at the current
// level, then decrements level exactly once. The first superstep performs
// no kernel work — it exists only so the gather from the starting level is
// committed before the first real computation (spec.md §4.5).
func (bc *BcContext) backwardKernel(ctx context.Context, pid int) error {
	if bc.engine.Superstep() == 1 {
		if bc.states[pid].Level > 0 {
			bc.engine.ReportNotFinished(pid)
		}

		return nil
	}

	st := bc.states[pid]
	csr := bc.graph.CSR(pid)
	pool := bc.cpuPools[pid]
	level := int32(st.Level)
	d := st.LocalDistance()
	numSPs := st.LocalNumSPs()
	delta := st.LocalDelta()

	// level 0 is only ever the seeded source; Brandes never folds a
	// source's own delta into its betweenness score, so skip the
	// accumulation entirely when the descent reaches it.
	if level >= 1 {
		err := pool.ForEachVertex(ctx, st.NumLocal, func(ctx context.Context, v uint32) error {
			if partition.LoadDistance(d, v) != level {
				return nil
			}

			var sum float32
			for _, nbr := range csr.Neighbors(v) {
				nbrPid, nbrLocal := nbr.Decode()
				if int(nbrPid) == pid {
					if partition.LoadDistance(d, nbrLocal) != level+1 {
						continue
					}
					nbrNumSPs := numSPs[nbrLocal]
					if nbrNumSPs == 0 {
						continue
					}
					sum += (float32(numSPs[v]) / float32(nbrNumSPs)) * (delta[nbrLocal] + 1)

					continue
				}

				idx, ok := bc.boundaryIndex[pairKey{pid, int(nbrPid)}][nbrLocal]
				if !ok {
					continue
				}
				rd := st.Distance[int(nbrPid)]
				if idx >= len(rd) || rd[idx] != level+1 {
					continue
				}
				nbrNumSPs := st.NumSPs[int(nbrPid)][idx]
				if nbrNumSPs == 0 {
					continue
				}
				b := bc.fabric.Boundary(pid, int(nbrPid))
				nbrDelta := b.DeltaPullIn.Values[idx]
				sum += (float32(numSPs[v]) / float32(nbrNumSPs)) * (nbrDelta + 1)
			}

			delta[v] = sum
			st.Betweenness[v] += float64(sum)

			return nil
		})
		if err != nil {
			return err
		}
	}

	st.Level--
	if st.Level > 0 {
		bc.engine.ReportNotFinished(pid)
	}

	return nil
}

// backwardGather stages delta for every boundary vertex at level+1 (the
// layer Kernel just finished this superstep, since Kernel's decrement
// already ran), so the remote partition's next-superstep kernel can read
// it via DeltaPullIn (spec.md §4.5, "Gather").
func (bc *BcContext) backwardGather(ctx context.Context, pid int) error {
	st := bc.states[pid]
	level := int32(st.Level)
	d := st.LocalDistance()
	delta := st.LocalDelta()

	for _, q := range bc.incomingPairs[pid] {
		b := bc.fabric.Boundary(q, pid)
		for i, vid := range b.RmtNbrs {
			if partition.LoadDistance(d, vid) == level+1 {
				b.DeltaPull.Values[i] = delta[vid]
			}
		}
	}

	return nil
}
