package partition

import "errors"

// Sentinel errors for the partition package.
var (
	// ErrVertexNotFound indicates a local vertex id outside [0, V).
	ErrVertexNotFound = errors.New("partition: local vertex id out of range")

	// ErrPartitionNotFound indicates a partition id outside [0, NumPartitions).
	ErrPartitionNotFound = errors.New("partition: partition id out of range")

	// ErrCSRMalformed indicates Offsets/Edges fail the CSR shape invariant
	// (len(Offsets) != V+1, or a non-monotone offset sequence).
	ErrCSRMalformed = errors.New("partition: malformed CSR subgraph")

	// ErrStateSizeMismatch indicates a State slice's length does not match
	// the vertex count it is supposed to cover.
	ErrStateSizeMismatch = errors.New("partition: state slice size mismatch")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the declared enum.
	ErrUnknownAlgorithm = errors.New("partition: unknown partition algorithm")

	// ErrUnknownProcessorType indicates a ProcessorType outside CPU/Accelerator.
	ErrUnknownProcessorType = errors.New("partition: unknown processor type")
)
