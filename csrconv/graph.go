package csrconv

import "github.com/hybridbc/engine/partition"

// Graph is the concrete partition.PartitionedGraph built by FromGraph.
type Graph struct {
	csrs           []*partition.CSR
	boundary       map[pairKey][]uint32
	localToGlobal  [][]int
	algorithms     []partition.Algorithm
	processorTypes []partition.ProcessorType
}

type pairKey struct{ p, q int }

// NumPartitions returns the total partition count.
func (g *Graph) NumPartitions() int { return len(g.csrs) }

// CSR returns the read-only subgraph owned by partition pid.
func (g *Graph) CSR(pid int) *partition.CSR { return g.csrs[pid] }

// BoundaryMap returns the local vids on q that p may read/write.
func (g *Graph) BoundaryMap(p, q int) []uint32 { return g.boundary[pairKey{p, q}] }

// LocalToGlobal translates a partition-local vid back to its original
// flattened vertex index (the order core.Graph.Vertices() returned).
func (g *Graph) LocalToGlobal(pid int, local uint32) int { return g.localToGlobal[pid][local] }

// Algorithm reports the partitioning tag for pid.
func (g *Graph) Algorithm(pid int) partition.Algorithm { return g.algorithms[pid] }

// ProcessorType reports whether pid runs on cpuworker or warp.
func (g *Graph) ProcessorType(pid int) partition.ProcessorType { return g.processorTypes[pid] }

// SetProcessorType overrides pid's processor type; FromGraph defaults
// every partition to partition.CPU, since the heterogeneous CPU/Accelerator
// assignment is caller policy (SPEC_FULL.md §1). Tests exercising the
// heterogeneous-equivalence property use this to build mixed graphs.
func (g *Graph) SetProcessorType(pid int, pt partition.ProcessorType) {
	g.processorTypes[pid] = pt
}
