// Package cpuworker drives a CPU-resident partition's outer vertex loop
// with a shared-memory goroutine pool: only the outer loop over local
// vertices is parallelized, matching spec.md §5's "nested-parallel-free"
// rule — each worker processes one vertex's edges serially.
package cpuworker
