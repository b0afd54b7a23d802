package partition

// CSR is a read-only compressed-sparse-row subgraph for one partition.
// Offsets has length V+1; the neighbors of local vertex v are
// Edges[Offsets[v]:Offsets[v+1]], each already encoded as a composite
// VertexID on the global neighbor (possibly in a different partition).
type CSR struct {
	Offsets []uint32
	Edges   []VertexID
}

// NumVertices returns the local vertex count V this CSR describes.
func (c *CSR) NumVertices() int {
	if c == nil || len(c.Offsets) == 0 {
		return 0
	}

	return len(c.Offsets) - 1
}

// NumEdges returns the total edge count E.
func (c *CSR) NumEdges() int {
	if c == nil {
		return 0
	}

	return len(c.Edges)
}

// Neighbors returns the encoded neighbor slice for local vertex v.
// Panics if v is out of range; callers are expected to bounds-check against
// NumVertices before calling, matching the "read-only trusted input" status
// of the CSR in the spec.
func (c *CSR) Neighbors(v uint32) []VertexID {
	return c.Edges[c.Offsets[v]:c.Offsets[v+1]]
}

// Validate checks the CSR shape invariant: Offsets is non-decreasing, its
// first element is 0, and its last element equals len(Edges).
func (c *CSR) Validate() error {
	if c == nil || len(c.Offsets) == 0 {
		return ErrCSRMalformed
	}
	if c.Offsets[0] != 0 {
		return ErrCSRMalformed
	}
	for i := 1; i < len(c.Offsets); i++ {
		if c.Offsets[i] < c.Offsets[i-1] {
			return ErrCSRMalformed
		}
	}
	if int(c.Offsets[len(c.Offsets)-1]) != len(c.Edges) {
		return ErrCSRMalformed
	}

	return nil
}
