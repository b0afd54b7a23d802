package bc

import (
	"fmt"
	"os"

	"github.com/hybridbc/engine/metrics"
	"github.com/hybridbc/engine/sampler"
)

// Option configures BetweennessHybrid via functional arguments, mirroring
// bfs.Option / builder.BuilderOption. An invalid Option is recorded and
// surfaced as an ErrPrecondition error when the run starts.
type Option func(*Options)

// Options holds the tunables BetweennessHybrid accepts beyond the graph and
// epsilon. The teacher carries no logging library (SPEC_FULL.md AMBIENT
// STACK), so Verbose/Progress is the only observability hook besides the
// metrics package.
type Options struct {
	// Verbose gates Progress calls; false makes Progress a no-op
	// regardless of whether the caller supplied one.
	Verbose bool

	// Progress receives human-readable round/superstep narration when
	// Verbose is true. Defaults to writing to os.Stderr.
	Progress func(format string, args ...any)

	// Sampler picks source vertices in approximate mode. Defaults to
	// sampler.NewUniformSampler.
	Sampler sampler.Sampler

	// Metrics receives per-superstep/per-round instrumentation. Defaults
	// to a no-op recorder.
	Metrics metrics.Recorder

	// NumCPUWorkers bounds the goroutine count cpuworker.Pool uses for
	// CPU partitions. 0 defers to cpuworker's own default.
	NumCPUWorkers int

	// VirtualWarpMaxThreads bounds warp.ProcessFrontier's goroutine count
	// for Accelerator partitions. 0 defers to warp.MaxThreadsPerBlock.
	VirtualWarpMaxThreads int

	err error
}

func defaultOptions() Options {
	return Options{
		Progress: func(format string, args ...any) { fmt.Fprintf(os.Stderr, format+"\n", args...) },
		Sampler:  sampler.NewUniformSampler(1),
		Metrics:  metrics.NoOp(),
	}
}

// WithVerbose enables Progress narration.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithProgress overrides the progress callback. A nil fn is rejected.
func WithProgress(fn func(format string, args ...any)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil progress func", ErrPrecondition)

			return
		}
		o.Progress = fn
	}
}

// WithSampler overrides the approximate-mode source sampler. A nil s is
// rejected.
func WithSampler(s sampler.Sampler) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: nil sampler", ErrPrecondition)

			return
		}
		o.Sampler = s
	}
}

// WithMetrics overrides the metrics recorder. A nil m is rejected.
func WithMetrics(m metrics.Recorder) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: nil metrics recorder", ErrPrecondition)

			return
		}
		o.Metrics = m
	}
}

// WithNumCPUWorkers sets the CPU worker pool size. n <= 0 is rejected.
func WithNumCPUWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: numCPUWorkers must be positive, got %d", ErrPrecondition, n)

			return
		}
		o.NumCPUWorkers = n
	}
}

// WithVirtualWarpMaxThreads bounds warp goroutine fan-out. n <= 0 is
// rejected.
func WithVirtualWarpMaxThreads(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: virtualWarpMaxThreads must be positive, got %d", ErrPrecondition, n)

			return
		}
		o.VirtualWarpMaxThreads = n
	}
}
