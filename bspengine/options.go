package bspengine

// Option configures an Engine via functional arguments, mirroring
// bfs.Option / builder.BuilderOption's pattern: With... constructors close
// over the mutable options struct; invalid values are recorded and
// surfaced as ErrOptionViolation at construction time.
type Option func(*engineOptions)

type engineOptions struct {
	maxSupersteps int // 0 means unbounded
	onSuperstep   func(superstep int)
	err           error
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		maxSupersteps: 0,
		onSuperstep:   func(int) {},
	}
}

// WithMaxSupersteps bounds how many supersteps a single Execute round may
// run before returning ErrSuperstepLimitExceeded. A value <= 0 is rejected.
func WithMaxSupersteps(n int) Option {
	return func(o *engineOptions) {
		if n <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.maxSupersteps = n
	}
}

// WithOnSuperstep registers a callback invoked with the 1-based superstep
// number at the start of every superstep. A nil fn is rejected.
func WithOnSuperstep(fn func(superstep int)) Option {
	return func(o *engineOptions) {
		if fn == nil {
			o.err = ErrOptionViolation

			return
		}
		o.onSuperstep = fn
	}
}
