package warp

import "github.com/hybridbc/engine/partition"

// Tuning constants for virtual-warp batching (spec.md §6, "Configuration").
const (
	// VWarpMediumWidth is the lane count used for RANDOM and HIGH
	// partitions.
	VWarpMediumWidth = 8

	// VWarpMediumBatchSize is the batch-size tuning value for medium-width
	// partitions. ProcessFrontier does not read it: it enqueues every
	// frontier vertex's lanes in a single pass.
	VWarpMediumBatchSize = 256

	// FullBlockWidth is the lane count used for LOW (leaf-heavy)
	// partitions, which need the widest warp to amortize low per-vertex
	// degree.
	FullBlockWidth = 32

	// MaxThreadsPerBlock upper-bounds the goroutines any single
	// ProcessFrontier call may run concurrently.
	MaxThreadsPerBlock = 256
)

// WidthFor selects the virtual-warp width for a partition's algorithm tag:
// RANDOM and HIGH use the medium width; LOW (leaf-heavy) uses the full
// block width (spec.md §4.3, "Warp-batched neighbor processing").
func WidthFor(algo partition.Algorithm) int {
	if algo == partition.LOW {
		return FullBlockWidth
	}

	return VWarpMediumWidth
}
