package bc_test

import (
	"github.com/hybridbc/engine/core"
)

// referenceBetweenness computes unit-weight betweenness centrality with a
// textbook Brandes sweep directly over core.Graph, independent of the
// partition/CSR machinery under test. It is the oracle every bc_test.go
// equivalence test compares against: same shape as the engine's own
// forward-sum/backward-dependency phases (spec.md §4), but single-threaded
// and keyed by vertex ID rather than composite VertexID, so a bug shared
// between the engine and this oracle is unlikely.
//
// Output is indexed identically to core.Graph.Vertices() order, matching
// bc.BetweennessHybrid's out slice convention (LocalToGlobal maps every
// partition-local vid back to this same index space).
func referenceBetweenness(g *core.Graph) ([]float64, error) {
	order := g.Vertices()
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	bc := make([]float64, len(order))

	for _, s := range order {
		stack := make([]string, 0, len(order))
		preds := make(map[string][]string, len(order))
		sigma := make(map[string]float64, len(order))
		dist := make(map[string]int, len(order))

		for _, v := range order {
			sigma[v] = 0
			dist[v] = -1
		}
		sigma[s] = 1
		dist[s] = 0

		queue := []string{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			nbrs, err := g.NeighborIDs(v)
			if err != nil {
				return nil, err
			}
			for _, w := range nbrs {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		delta := make(map[string]float64, len(order))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				bc[index[w]] += delta[w]
			}
		}
	}

	return bc, nil
}
