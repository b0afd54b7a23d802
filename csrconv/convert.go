package csrconv

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/hybridbc/engine/core"
	"github.com/hybridbc/engine/partition"
)

// FromGraph converts g into a partition.PartitionedGraph over numPartitions
// partitions. Vertex IDs are hashed (FNV-1a) into partitions, a RANDOM
// assignment in the spec's Algorithm sense (spec.md §1, §4.1); algo tags
// each partition's Algorithm by evaluating the caller's callback on that
// partition's first-encountered vertex id. Every partition defaults to
// partition.CPU; callers wanting a heterogeneous CPU/Accelerator mix use
// Graph.SetProcessorType after conversion.
//
// Undirected edges are expanded into both directions before CSR
// construction, since partition.CSR is a directed adjacency structure and
// spec.md §4.1's forward/backward phases both walk out-edges.
func FromGraph(g *core.Graph, numPartitions int, algo func(vertexID string) partition.Algorithm) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if numPartitions <= 0 {
		return nil, ErrInvalidPartitionCount
	}
	if algo == nil {
		algo = func(string) partition.Algorithm { return partition.RANDOM }
	}

	vertices := g.Vertices() // already sorted lexicographically

	pidOf := make(map[string]int, len(vertices))
	localOf := make(map[string]uint32, len(vertices))
	localToGlobal := make([][]int, numPartitions)

	for i, id := range vertices {
		p := hashPartition(id, numPartitions)
		pidOf[id] = p
		localOf[id] = uint32(len(localToGlobal[p]))
		localToGlobal[p] = append(localToGlobal[p], i)
	}

	offsets := make([][]uint32, numPartitions)
	edges := make([][]partition.VertexID, numPartitions)
	for p := 0; p < numPartitions; p++ {
		offsets[p] = make([]uint32, 1, len(localToGlobal[p])+1)
	}

	boundarySeen := make(map[pairKey]map[uint32]bool)

	for p := 0; p < numPartitions; p++ {
		for _, gidx := range localToGlobal[p] {
			id := vertices[gidx]

			nbrs, err := g.NeighborIDs(id)
			if err != nil {
				return nil, fmt.Errorf("csrconv: neighbors of %q: %w", id, err)
			}

			for _, nbrID := range nbrs {
				nbrPid := pidOf[nbrID]
				nbrLocal := localOf[nbrID]
				edges[p] = append(edges[p], partition.Encode(uint32(nbrPid), nbrLocal))

				if nbrPid != p {
					key := pairKey{p, nbrPid}
					if boundarySeen[key] == nil {
						boundarySeen[key] = make(map[uint32]bool)
					}
					boundarySeen[key][nbrLocal] = true
				}
			}

			offsets[p] = append(offsets[p], uint32(len(edges[p])))
		}
	}

	csrs := make([]*partition.CSR, numPartitions)
	algorithms := make([]partition.Algorithm, numPartitions)
	processorTypes := make([]partition.ProcessorType, numPartitions)
	for p := 0; p < numPartitions; p++ {
		csrs[p] = &partition.CSR{Offsets: offsets[p], Edges: edges[p]}

		tag := partition.RANDOM
		if len(localToGlobal[p]) > 0 {
			tag = algo(vertices[localToGlobal[p][0]])
		}
		algorithms[p] = tag
		processorTypes[p] = partition.CPU
	}

	boundary := make(map[pairKey][]uint32, len(boundarySeen))
	for key, set := range boundarySeen {
		list := make([]uint32, 0, len(set))
		for vid := range set {
			list = append(list, vid)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		boundary[key] = list
	}

	return &Graph{
		csrs:           csrs,
		boundary:       boundary,
		localToGlobal:  localToGlobal,
		algorithms:     algorithms,
		processorTypes: processorTypes,
	}, nil
}

func hashPartition(id string, numPartitions int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	return int(h.Sum32() % uint32(numPartitions))
}
