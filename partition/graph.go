package partition

// PartitionedGraph is the external interface the engine consumes: a graph
// already split across partitions, with boundary maps describing which
// local vids on one partition are visible to another. Graph loading and the
// partitioning algorithm itself are out of scope (spec.md §1); csrconv
// supplies the one concrete in-tree implementation.
type PartitionedGraph interface {
	// NumPartitions returns the total partition count.
	NumPartitions() int

	// CSR returns the read-only subgraph owned by partition pid.
	CSR(pid int) *CSR

	// BoundaryMap returns, for the ordered pair (p, q), the local vids on q
	// that p may read/write — the rmt_nbrs array backing grooves.Boundary.
	BoundaryMap(p, q int) []uint32

	// LocalToGlobal translates a partition-local vertex id back to the
	// original engine-wide id (used only by aggregation).
	LocalToGlobal(pid int, local uint32) int

	// Algorithm reports the partitioning tag for pid (RANDOM/HIGH/LOW).
	Algorithm(pid int) Algorithm

	// ProcessorType reports whether pid runs on cpuworker or warp.
	ProcessorType(pid int) ProcessorType
}
