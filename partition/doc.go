// Package partition defines the data model shared by every partition of the
// hybrid BSP betweenness-centrality engine: the composite global vertex id,
// the read-only per-partition CSR subgraph, the per-partition algorithm
// state, and the PartitionedGraph interface external collaborators (graph
// loaders, partitioners) are expected to implement.
//
// Nothing in this package runs a superstep; it only describes the shapes
// bspengine, grooves, cpuworker, warp, and bc operate on.
package partition
