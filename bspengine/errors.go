package bspengine

import "errors"

// Sentinel errors for bspengine.
var (
	// ErrNoPartitions is returned by Execute when the engine was
	// constructed with zero partitions.
	ErrNoPartitions = errors.New("bspengine: engine has no partitions")

	// ErrSuperstepLimitExceeded is returned when MaxSupersteps is set and
	// a round fails to converge within that budget — a safety net against
	// a buggy hook that never reports finished.
	ErrSuperstepLimitExceeded = errors.New("bspengine: superstep limit exceeded without convergence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bspengine: invalid option supplied")
)
