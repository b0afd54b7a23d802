package bc

import "github.com/hybridbc/engine/partition"

// Exact is the sentinel epsilon value requesting exact BC rather than
// sampled approximation (spec.md §6, CENTRALITY_EXACT).
const Exact float64 = 0.0

// InfCost mirrors partition.Inf; exported under the spec's own name for
// callers that only import bc.
const InfCost = partition.Inf

// MaxPartitionCount is a documented upper bound on the number of
// partitions a single BcContext is expected to track. Go's slice-backed
// State does not need a compile-time bound to be correct, but the
// constant is kept as a sanity ceiling NewBcContext checks against, per
// spec.md §6's MAX_PARTITION_COUNT.
const MaxPartitionCount = 1 << 16
