package cpuworker

import "errors"

// Sentinel errors for cpuworker.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cpuworker: invalid option supplied")
)
