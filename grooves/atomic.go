package grooves

import "sync/atomic"

// AtomicAddUint32 adds delta into vals[idx]. Forward-phase scatters into a
// remote numSPs push buffer use this: multiple local workers may target the
// same boundary slot within a superstep (spec.md §5, shared-resource
// policy).
func AtomicAddUint32(vals []uint32, idx int, delta uint32) {
	atomic.AddUint32(&vals[idx], delta)
}
