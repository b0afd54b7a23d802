package metrics

import "time"

// Recorder is the instrumentation surface bc.BetweennessHybrid calls into.
// A single Recorder is shared across the whole run and labeled by runID so
// concurrent invocations (e.g. from the CLI's benchmark mode) stay
// distinguishable.
type Recorder interface {
	// ObserveSuperstep records that round completed one more superstep.
	ObserveSuperstep(runID, round string)

	// ObserveRoundDuration records how long one full round (forward,
	// distance-sync, numSPs-sync, or backward) took for a source.
	ObserveRoundDuration(runID, round string, d time.Duration)

	// ObserveMessageExchange records how many boundary slots carried a
	// non-zero value in the superstep's exchange.
	ObserveMessageExchange(runID, round string, count int)
}

type noopRecorder struct{}

// NoOp returns a Recorder whose methods do nothing, the default when a
// caller does not configure bc.WithMetrics.
func NoOp() Recorder { return noopRecorder{} }

func (noopRecorder) ObserveSuperstep(string, string)                 {}
func (noopRecorder) ObserveRoundDuration(string, string, time.Duration) {}
func (noopRecorder) ObserveMessageExchange(string, string, int)      {}
