package parallel

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultWindowFactor scales the worker count into the default dispatch window.
const DefaultWindowFactor = 4

// Config controls Ordered.
type Config struct {
	// Workers is the number of concurrent tasks. Values below 2 run tasks
	// sequentially in the consumer goroutine.
	Workers int

	// Window bounds the tasks dispatched ahead of the consumer.
	// If <= 0, defaults to DefaultWindowFactor * Workers.
	Window int
}

// Workers resolves a parallelism degree. -1 means all available CPUs
// (GOMAXPROCS); any other value below 1 means 1.
func Workers(jobs int) int {
	switch {
	case jobs == -1:
		return runtime.GOMAXPROCS(0)
	case jobs < 1:
		return 1
	default:
		return jobs
	}
}

type result[T any] struct {
	v   T
	err error
}

// Ordered calls fn for every index in [0, n) and yields the results in index
// order, regardless of completion order.
//
// The first error, in index order, is yielded once and ends the sequence;
// results before it are yielded normally. If ctx is cancelled the sequence
// ends with ctx.Err().
func Ordered[T any](ctx context.Context, n int, cfg Config, fn func(ctx context.Context, i int) (T, error)) iter.Seq2[T, error] {
	if cfg.Workers < 2 {
		return sequential(ctx, n, fn)
	}
	window := cfg.Window
	if window <= 0 {
		window = DefaultWindowFactor * cfg.Workers
	}

	return func(yield func(T, error) bool) {
		var zero T
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		sem := semaphore.NewWeighted(int64(window))
		pending := make(chan chan result[T], window)
		var g errgroup.Group
		g.SetLimit(cfg.Workers)

		done := make(chan struct{})
		go func() {
			defer close(done)
			defer close(pending)
			for i := 0; i < n; i++ {
				if ctx.Err() != nil {
					return
				}
				if err := sem.Acquire(ctx, 1); err != nil {
					return
				}
				slot := make(chan result[T], 1)
				select {
				case pending <- slot:
				case <-ctx.Done():
					return
				}
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						slot <- result[T]{err: err}
						return nil
					}
					v, err := fn(ctx, i)
					slot <- result[T]{v: v, err: err}
					return nil
				})
			}
		}()
		defer func() {
			cancel()
			<-done
			_ = g.Wait()
		}()

		consumed := 0
		for slot := range pending {
			r := <-slot
			sem.Release(1)
			if r.err != nil {
				yield(zero, r.err)
				return
			}
			consumed++
			if !yield(r.v, nil) {
				return
			}
		}
		if consumed < n {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			yield(zero, err)
		}
	}
}

func sequential[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			v, err := fn(ctx, i)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
