package bc

import "context"

// aggregateHook runs as the backward round's Aggr hook, which bspengine
// invokes once per partition on the round's last superstep. It is a no-op
// unless this is the last source (spec.md §4.6: "runs once, on the last
// superstep of the last backward round for the last source"); betweenness
// itself already accumulated across every source inside backwardKernel.
func (bc *BcContext) aggregateHook(ctx context.Context, pid int) error {
	if !bc.run.isLastSource {
		return nil
	}

	st := bc.states[pid]
	for v := uint32(0); v < st.NumLocal; v++ {
		g := bc.graph.LocalToGlobal(pid, v)
		bc.run.BetweennessScoreHost[g] = st.Betweenness[v]
	}

	return nil
}

// finalizeScale copies BetweennessScoreHost into the caller's output,
// applying the approximate-mode V_total/num_samples scale (spec.md §4.6).
// This stands in for the accelerator's device-to-host copy, done once
// after every partition's aggregateHook has run rather than per-partition,
// since the scale factor is the same for every vertex.
func (bc *BcContext) finalizeScale(out []float64) {
	scale := 1.0
	if bc.run.NumSamples > 0 {
		scale = float64(bc.totalVertices) / float64(bc.run.NumSamples)
	}
	for i, v := range bc.run.BetweennessScoreHost {
		out[i] = v * scale
	}
}
