package partition

import "sync/atomic"

// Inf is the sentinel distance value for "vertex not yet reached". It must
// be distinct from any valid BFS level; math.MaxInt32 satisfies that for
// any graph with fewer than MaxInt32 hops.
const Inf int32 = 1<<31 - 1

// State is one partition's algorithm state for a single source iteration.
// Distance/NumSPs/Delta are keyed by remote partition id; the local
// partition's own id (State.Partition) keys the full local vertex set,
// while every other key is sized to the boundary-vertex count between this
// partition and that remote (spec.md §3, "Per-partition algorithm state").
//
// numSPs_f is not a separate field here: for the local partition it is
// State.NumSPs[State.Partition] itself; for remote partitions it is the
// grooves.Boundary push buffer the forward kernel writes into directly
// (spec.md invariant 6, "outbox alias") — see bc/forward.go.
type State struct {
	Partition int
	NumLocal  uint32

	Distance map[int][]int32
	NumSPs   map[int][]uint32
	Delta    map[int][]float32

	Betweenness []float64

	// FrontierList/FrontierCount are populated only for Accelerator
	// partitions; see warp.BuildFrontier.
	FrontierList  []uint32
	FrontierCount atomic.Uint32

	Level int
	Done  *atomic.Bool
}

// NewState allocates a State for partition pid with numLocal local
// vertices. boundaryCounts maps each remote partition id q != pid to the
// number of boundary vertices p may touch on q.
func NewState(pid int, numLocal uint32, boundaryCounts map[int]uint32) *State {
	s := &State{
		Partition:    pid,
		NumLocal:     numLocal,
		Distance:     make(map[int][]int32, len(boundaryCounts)+1),
		NumSPs:       make(map[int][]uint32, len(boundaryCounts)+1),
		Delta:        make(map[int][]float32, len(boundaryCounts)+1),
		Betweenness:  make([]float64, numLocal),
		FrontierList: make([]uint32, numLocal),
		Done:         &atomic.Bool{},
	}

	s.Distance[pid] = make([]int32, numLocal)
	s.NumSPs[pid] = make([]uint32, numLocal)
	s.Delta[pid] = make([]float32, numLocal)

	for q, count := range boundaryCounts {
		if q == pid {
			continue
		}
		s.Distance[q] = make([]int32, count)
		s.NumSPs[q] = make([]uint32, count)
		s.Delta[q] = make([]float32, count)
	}

	return s
}

// ResetForSource reinitializes distance/numSPs/delta mirrors and level for
// a new source iteration, without reallocating backing arrays. Invariant 3
// (source seeding) and invariant 4 (delta init) both follow from this reset
// plus a subsequent SeedSource call for the partition owning src.
func (s *State) ResetForSource() {
	for q, d := range s.Distance {
		for i := range d {
			d[i] = Inf
		}
		for i := range s.NumSPs[q] {
			s.NumSPs[q][i] = 0
		}
		for i := range s.Delta[q] {
			s.Delta[q][i] = 0
		}
	}
	// Betweenness persists across sources (it accumulates); only the
	// per-source mirrors above reset.
	s.Level = 0
	s.FrontierCount.Store(0)
}

// SeedSource marks local vertex `local` as the source: distance 0, one
// shortest path. Only the partition owning the source calls this.
func (s *State) SeedSource(local uint32) error {
	d, ok := s.Distance[s.Partition]
	if !ok || int(local) >= len(d) {
		return ErrVertexNotFound
	}
	d[local] = 0
	s.NumSPs[s.Partition][local] = 1

	return nil
}

// LocalDistance returns the distance slice for this partition's own
// vertex set (a convenience accessor for the common case).
func (s *State) LocalDistance() []int32 {
	return s.Distance[s.Partition]
}

// LocalNumSPs returns the numSPs slice for this partition's own vertex set.
func (s *State) LocalNumSPs() []uint32 {
	return s.NumSPs[s.Partition]
}

// LocalDelta returns the delta slice for this partition's own vertex set.
func (s *State) LocalDelta() []float32 {
	return s.Delta[s.Partition]
}

// MaxFiniteLevel returns the highest Distance value short of Inf across the
// local vertex set, or 0 if every local vertex is unreached. A diagnostic
// accessor only: it sees this partition's local vertices alone, so it
// cannot substitute for the globally-synchronized level value every
// partition must agree on entering the backward phase (see
// bc.backwardInit).
func (s *State) MaxFiniteLevel() int {
	max := 0
	for _, d := range s.LocalDistance() {
		if d != Inf && int(d) > max {
			max = int(d)
		}
	}

	return max
}
