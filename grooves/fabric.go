package grooves

import "fmt"

type pairKey struct{ p, q int }

// Fabric holds one Boundary per ordered partition pair (p, q), p != q.
type Fabric struct {
	boundaries map[pairKey]*Boundary
}

// NewFabric returns an empty Fabric ready for SetBoundary calls.
func NewFabric() *Fabric {
	return &Fabric{boundaries: make(map[pairKey]*Boundary)}
}

// SetBoundary registers the boundary p sees into q, built from rmtNbrs (the
// local vids on q that p may touch). Replaces any existing boundary for the
// pair.
func (f *Fabric) SetBoundary(p, q int, rmtNbrs []uint32) *Boundary {
	b := NewBoundary(rmtNbrs)
	f.boundaries[pairKey{p, q}] = b

	return b
}

// Boundary returns the (p, q) boundary, or nil if none was registered
// (p and q are not adjacent in the partitioning).
func (f *Fabric) Boundary(p, q int) *Boundary {
	return f.boundaries[pairKey{p, q}]
}

// Pairs returns every (p, q) pair with a registered boundary, in
// unspecified order.
func (f *Fabric) Pairs() [][2]int {
	out := make([][2]int, 0, len(f.boundaries))
	for k := range f.boundaries {
		out = append(out, [2]int{k.p, k.q})
	}

	return out
}

// ResetAll clears every boundary's buffers, ahead of a new BC source.
func (f *Fabric) ResetAll() {
	for _, b := range f.boundaries {
		b.ResetRound()
	}
}

// CommitPushAll delivers every boundary's accumulated push values; the
// engine calls this once per superstep for PUSH-direction rounds.
func (f *Fabric) CommitPushAll() {
	for _, b := range f.boundaries {
		b.CommitPush()
	}
}

// CommitDistPullAll delivers every boundary's gathered distance values.
func (f *Fabric) CommitDistPullAll() {
	for _, b := range f.boundaries {
		b.CommitDistPull()
	}
}

// CommitNumSPsPullAll delivers every boundary's gathered numSPs values.
func (f *Fabric) CommitNumSPsPullAll() {
	for _, b := range f.boundaries {
		b.CommitNumSPsPull()
	}
}

// CommitDeltaPullAll delivers every boundary's gathered delta values.
func (f *Fabric) CommitDeltaPullAll() {
	for _, b := range f.boundaries {
		b.CommitDeltaPull()
	}
}

// String renders the fabric's pair count, useful in Verbose logging.
func (f *Fabric) String() string {
	return fmt.Sprintf("grooves.Fabric{pairs=%d}", len(f.boundaries))
}
