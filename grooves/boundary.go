package grooves

// Boundary is the fabric's state for one ordered partition pair (p, q):
// the distinct local vids on q that p may read/write, and the buffers
// carrying values for them.
//
// The spec describes a single generic push_values/pull_values pair per
// boundary; in practice the payload type changes by round (numSPs push is
// u32, distance-sync pull is i32, numSPs-sync pull is u32, delta-gather
// pull is f32), and those rounds never overlap for a given source
// iteration. Rather than erase that type information through a void*-style
// union, Boundary exposes one typed buffer pair per concern.
//
// Each concern has a live buffer (written every superstep by its
// producer — Kernel for push, Gather for pull) and an Inbox buffer holding
// what the last Commit call delivered. A producer's writes during superstep
// S must not be visible to a consumer until superstep S+1 (spec.md §4.1,
// "writes ... delivered next superstep"); since different partitions' hooks
// run concurrently within a superstep, reading the live buffer directly
// would race against its producer's next-superstep writes. CommitPush
// resets the live buffer after copying (push values accumulate via atomic
// add across a superstep and must not carry into the next); the Commit*Pull
// variants only copy, since Gather always rewrites every slot it owns.
type Boundary struct {
	// RmtNbrs maps each slot index to the local vid on the remote
	// partition — the fabric's only global knowledge (spec.md §4.2).
	RmtNbrs []uint32

	Push     Buffer[uint32]
	PushIn   Buffer[uint32]

	DistPull   Buffer[int32]
	DistPullIn Buffer[int32]

	NumSPsPull   Buffer[uint32]
	NumSPsPullIn Buffer[uint32]

	DeltaPull   Buffer[float32]
	DeltaPullIn Buffer[float32]
}

// NewBoundary allocates a Boundary over the given remote-neighbor slot map.
// rmtNbrs is copied so the fabric owns a stable view independent of the
// caller's slice.
func NewBoundary(rmtNbrs []uint32) *Boundary {
	n := len(rmtNbrs)
	nbrs := make([]uint32, n)
	copy(nbrs, rmtNbrs)

	return &Boundary{
		RmtNbrs:      nbrs,
		Push:         NewBuffer[uint32](n),
		PushIn:       NewBuffer[uint32](n),
		DistPull:     NewBuffer[int32](n),
		DistPullIn:   NewBuffer[int32](n),
		NumSPsPull:   NewBuffer[uint32](n),
		NumSPsPullIn: NewBuffer[uint32](n),
		DeltaPull:    NewBuffer[float32](n),
		DeltaPullIn:  NewBuffer[float32](n),
	}
}

// Count returns the boundary's slot count.
func (b *Boundary) Count() int {
	if b == nil {
		return 0
	}

	return len(b.RmtNbrs)
}

// CommitPush delivers this superstep's accumulated push values into PushIn
// and clears Push for the next superstep's accumulation.
func (b *Boundary) CommitPush() {
	b.PushIn.CopyFrom(b.Push)
	b.Push.Reset()
}

// CommitDistPull delivers this superstep's gathered distance values.
func (b *Boundary) CommitDistPull() {
	b.DistPullIn.CopyFrom(b.DistPull)
}

// CommitNumSPsPull delivers this superstep's gathered numSPs values.
func (b *Boundary) CommitNumSPsPull() {
	b.NumSPsPullIn.CopyFrom(b.NumSPsPull)
}

// CommitDeltaPull delivers this superstep's gathered delta values.
func (b *Boundary) CommitDeltaPull() {
	b.DeltaPullIn.CopyFrom(b.DeltaPull)
}

// ResetRound clears every buffer ahead of a new BC source iteration.
func (b *Boundary) ResetRound() {
	b.Push.Reset()
	b.PushIn.Reset()
	b.DistPull.Reset()
	b.DistPullIn.Reset()
	b.NumSPsPull.Reset()
	b.NumSPsPullIn.Reset()
	b.DeltaPull.Reset()
	b.DeltaPullIn.Reset()
}
