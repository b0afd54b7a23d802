// Package csrconv converts a core.Graph into the one concrete, in-tree
// partition.PartitionedGraph implementation: vertices are hashed into
// numPartitions partitions (RANDOM assignment), CSR subgraphs and boundary
// maps are derived from the graph's adjacency, and partition.Algorithm tags
// are supplied by a caller callback (SPEC_FULL.md §1, §6 — the partitioning
// algorithm itself stays out of scope; this is a minimal reference
// implementation that makes the engine runnable end-to-end).
package csrconv
