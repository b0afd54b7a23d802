package partition

// VertexID is the composite global vertex identifier used by every CSR edge
// list and every cross-partition message. The high 32 bits encode the owning
// partition id; the low 32 bits encode the vertex's local id within that
// partition. Both fields are recovered in O(1) via bit shifts, matching the
// spec's "high bits partition, low bits local vertex id" encoding.
type VertexID uint64

const localBits = 32

// Encode packs a partition id and a local vertex id into a VertexID.
func Encode(pid, local uint32) VertexID {
	return VertexID(uint64(pid)<<localBits | uint64(local))
}

// Decode recovers the (partition id, local vertex id) pair from v.
func (v VertexID) Decode() (pid, local uint32) {
	pid = uint32(uint64(v) >> localBits)
	local = uint32(uint64(v))

	return pid, local
}

// Partition returns just the partition id encoded in v.
func (v VertexID) Partition() uint32 {
	pid, _ := v.Decode()

	return pid
}

// Local returns just the local vertex id encoded in v.
func (v VertexID) Local() uint32 {
	_, local := v.Decode()

	return local
}
