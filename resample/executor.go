package resample

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/zoompan/geometry"
	"github.com/opd-ai/zoompan/limits"
)

// Executor runs a row-sliced loop on a bounded number of goroutines.
//
// Rows are split into contiguous slices, one per worker. Each slice is
// handed to fn exactly once; fn must only write rows inside its slice.
type Executor struct {
	workers int
}

// NewExecutor creates an executor with the given worker count. Zero means
// runtime.GOMAXPROCS(0).
func NewExecutor(workers int) (*Executor, error) {
	if err := limits.ValidateThreads(workers); err != nil {
		return nil, fmt.Errorf("executor: %w", err)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Executor{workers: workers}, nil
}

// Workers returns the worker count.
func (e *Executor) Workers() int {
	return e.workers
}

// Run calls fn over [0, rows) split into contiguous slices and waits for all
// of them. A cancelled context stops new slices from starting and its error
// is returned.
func (e *Executor) Run(ctx context.Context, rows int, fn func(y0, y1 int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rows <= 0 {
		return nil
	}
	workers := min(e.workers, rows)
	if workers <= 1 {
		fn(0, rows)
		return nil
	}

	chunk := (rows + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < rows; y0 += chunk {
		if gctx.Err() != nil {
			break
		}
		y0, y1 := y0, min(y0+chunk, rows)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ResampleParallel runs ResampleRows for every row of p on e.
func ResampleParallel(ctx context.Context, e *Executor, p Plane, zoom float64, pan geometry.Point) error {
	return e.Run(ctx, p.DstSize.H, func(y0, y1 int) {
		ResampleRows(p, zoom, pan, y0, y1)
	})
}
