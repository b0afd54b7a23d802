package bc

import "github.com/hybridbc/engine/partition"

// runState is the global per-BC-run state spec.md §3 calls bc_g; a
// BcContext carries exactly one, threaded through every hook invocation
// instead of living in a package-level variable (spec.md §9, "Global
// mutable bc_g").
type runState struct {
	// BetweennessScoreHost mirrors spec.md's host staging buffer: every
	// aggregate hook writes here first; finalizeScale copies it into the
	// caller's out slice once, after the last source's backward round
	// converges.
	BetweennessScoreHost []float64

	// Source is the current source vertex, valid for the duration of one
	// source iteration.
	Source partition.VertexID

	// Epsilon is the accuracy requested by the caller; Exact requests
	// exact BC.
	Epsilon float64

	// NumSamples is the sampled source count in approximate mode, 0 in
	// exact mode.
	NumSamples int

	srcPid       int
	srcLocal     uint32
	isLastSource bool
}
