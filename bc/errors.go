package bc

import "errors"

// ErrAllocation stands in for host/accelerator allocation failure (spec.md
// §7). In this implementation it surfaces when the PartitionedGraph has
// more than MaxPartitionCount partitions or a partition without a CSR,
// when the engine or a worker pool cannot be constructed, or when the
// sampler fails.
var ErrAllocation = errors.New("bc: allocation failure")

// ErrWorkerFailure stands in for "accelerator operation failure": a
// cpuworker or warp goroutine returned an error.
var ErrWorkerFailure = errors.New("bc: worker failure")

// ErrPrecondition indicates a programming bug (nil state, unknown
// processor type, a neighbor referencing an unregistered boundary) rather
// than a recoverable condition. Call sites that hit this wrap it with
// fmt.Errorf for context; it is never turned into a retry.
var ErrPrecondition = errors.New("bc: precondition violated")
