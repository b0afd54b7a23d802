package warp

import "github.com/hybridbc/engine/partition"

// BuildFrontier scans every local vertex and appends those at the
// partition's current level into s.FrontierList, then records the count in
// s.FrontierCount. Returns the frontier slice (a view into s.FrontierList's
// backing array, valid until the next BuildFrontier call).
//
// The spec's two-phase shared-memory-queue compaction is a GPU-block-local
// optimization with no Go analogue; a single linear scan achieves the same
// observable result (spec.md §4.3, "Frontier building").
func BuildFrontier(s *partition.State) []uint32 {
	frontier := s.FrontierList[:0]
	level := int32(s.Level)
	for v, d := range s.LocalDistance() {
		if d == level {
			frontier = append(frontier, uint32(v))
		}
	}
	s.FrontierList = frontier
	s.FrontierCount.Store(uint32(len(frontier)))

	return frontier
}
