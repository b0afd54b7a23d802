package bspengine

import (
	"context"
	"sync/atomic"

	"github.com/hybridbc/engine/grooves"
	"golang.org/x/sync/errgroup"
)

// HookFunc is a per-partition hook: Init, Kernel, Scatter, Gather,
// Finalize, or Aggr. A nil HookFunc is treated as a no-op.
type HookFunc func(ctx context.Context, pid int) error

// Config registers the hooks and message Direction for one BSP round
// (spec.md §4.1). Exchange, if set, runs after every partition's hooks
// complete in each superstep except the last one of the round (the
// superstep in which every partition stays finished), moving buffered
// values between partitions;
// it is round-specific because the payload type differs by round (see
// grooves.Boundary's doc comment), so the engine cannot perform it
// generically.
type Config struct {
	Direction grooves.Direction

	Init     HookFunc
	Kernel   HookFunc
	Scatter  HookFunc
	Gather   HookFunc
	Finalize HookFunc
	Aggr     HookFunc

	Exchange func(ctx context.Context) error
}

// Engine runs BSP rounds over a fixed number of partitions.
type Engine struct {
	numPartitions int
	finished      []atomic.Bool
	superstep     int
	opts          engineOptions
}

// NewEngine constructs an Engine for numPartitions partitions.
func NewEngine(numPartitions int, opts ...Option) (*Engine, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{
		numPartitions: numPartitions,
		finished:      make([]atomic.Bool, numPartitions),
		opts:          o,
	}, nil
}

// Superstep returns the 1-based current superstep number. Valid only while
// Execute is running or just after it returns.
func (e *Engine) Superstep() int {
	return e.superstep
}

// ReportNotFinished forces at least one more superstep by clearing
// partition pid's finished flag. Hooks call this when they discover more
// work.
func (e *Engine) ReportNotFinished(pid int) {
	e.finished[pid].Store(false)
}

func runHook(ctx context.Context, h HookFunc, pid int) error {
	if h == nil {
		return nil
	}

	return h(ctx, pid)
}

// Execute runs supersteps until every partition's finished flag stays true
// across a full superstep, per the fixed hook order: Init (superstep 1
// only) -> Kernel -> Scatter (iff PUSH) -> Gather (iff PULL) -> Finalize
// (last superstep only) -> Aggr (last superstep only). Partitions run
// concurrently within a superstep via errgroup; the engine is the barrier
// between supersteps.
//
// ctx.Err() is checked only at superstep boundaries, matching the
// "BSP rounds run to completion" rule: no cancellation mid-superstep.
func (e *Engine) Execute(ctx context.Context, cfg Config) error {
	if e.numPartitions == 0 {
		return ErrNoPartitions
	}

	e.superstep = 0

	for {
		e.superstep++
		if e.opts.maxSupersteps > 0 && e.superstep > e.opts.maxSupersteps {
			return ErrSuperstepLimitExceeded
		}
		e.opts.onSuperstep(e.superstep)

		for i := range e.finished {
			e.finished[i].Store(true)
		}

		isFirst := e.superstep == 1

		g, gctx := errgroup.WithContext(ctx)
		for pid := 0; pid < e.numPartitions; pid++ {
			pid := pid
			g.Go(func() error {
				if isFirst {
					if err := runHook(gctx, cfg.Init, pid); err != nil {
						return err
					}
				}
				if err := runHook(gctx, cfg.Kernel, pid); err != nil {
					return err
				}
				if cfg.Direction == grooves.PUSH {
					if err := runHook(gctx, cfg.Scatter, pid); err != nil {
						return err
					}
				}
				if cfg.Direction == grooves.PULL {
					if err := runHook(gctx, cfg.Gather, pid); err != nil {
						return err
					}
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		allFinished := true
		for i := range e.finished {
			if !e.finished[i].Load() {
				allFinished = false

				break
			}
		}

		if allFinished {
			g2, gctx2 := errgroup.WithContext(ctx)
			for pid := 0; pid < e.numPartitions; pid++ {
				pid := pid
				g2.Go(func() error {
					if err := runHook(gctx2, cfg.Finalize, pid); err != nil {
						return err
					}

					return runHook(gctx2, cfg.Aggr, pid)
				})
			}
			if err := g2.Wait(); err != nil {
				return err
			}

			return nil
		}

		if cfg.Exchange != nil {
			if err := cfg.Exchange(ctx); err != nil {
				return err
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
