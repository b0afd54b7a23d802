package csrconv

import "errors"

// ErrGraphNil is returned when FromGraph is given a nil *core.Graph.
var ErrGraphNil = errors.New("csrconv: graph is nil")

// ErrInvalidPartitionCount is returned when numPartitions <= 0.
var ErrInvalidPartitionCount = errors.New("csrconv: numPartitions must be positive")
