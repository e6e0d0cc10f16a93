// Package tsp - multi-start harness.
//
// MultiStart runs Engine.Run from Restarts independent random tours and
// summarizes the final costs. Restart r draws its initial tour from
// deriveRNG(Seed, r), so the report depends only on (graph, options) and
// never on the number of workers or their scheduling.
//
// Concurrency: restarts run on a bounded errgroup pool. Workers share only
// the immutable graph and Engine; each writes its own slot of the result slice.
package tsp

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/twoopt/graph"
)

// DefaultRestarts matches the restart count of the classic random-restart
// experiment (100 random tours per instance).
const DefaultRestarts = 100

// MultiStartOptions configures MultiStart.
type MultiStartOptions struct {
	// Restarts is the number of random initial tours (≥ 1).
	Restarts int

	// Seed selects the random streams; 0 means the fixed default seed.
	Seed int64

	// Workers bounds concurrent restarts; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Selection is passed to Engine.Run for every restart.
	Selection Selection
}

// DefaultMultiStartOptions returns DefaultRestarts best-fit restarts on all CPUs.
func DefaultMultiStartOptions() MultiStartOptions {
	return MultiStartOptions{
		Restarts:  DefaultRestarts,
		Workers:   0,
		Selection: BestFit,
	}
}

// Report summarizes a MultiStart run.
type Report struct {
	// Best is the cheapest final tour; the lowest restart index wins ties.
	Best *Tour

	// Costs holds the final cost of every restart, in restart order.
	Costs []float64

	// Min, Max, Mean and StdDev describe Costs (StdDev is 0 for one restart).
	Min, Max, Mean, StdDev float64

	// Iterations and Evaluated are totals over all restarts.
	Iterations int
	Evaluated  int

	// Converged counts restarts that ended in a 2-opt local optimum.
	Converged int
}

// MultiStart runs the default engine from opts.Restarts random tours.
// See Engine.MultiStart.
func MultiStart(ctx context.Context, g graph.Graph, opts MultiStartOptions) (Report, error) {
	return defaultEngine.MultiStart(ctx, g, opts)
}

// MultiStart validates g once, runs e.Run from opts.Restarts random tours and
// returns the summary. Cancellation of ctx is observed between restarts.
//
// Errors: ErrNilGraph, ErrInvalidOptions, graph validation sentinels (wrapped),
// or ctx.Err().
func (e *Engine) MultiStart(ctx context.Context, g graph.Graph, opts MultiStartOptions) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}
	if opts.Restarts < 1 {
		return Report{}, fmt.Errorf("restarts=%d: %w", opts.Restarts, ErrInvalidOptions)
	}
	if opts.Workers < 0 {
		return Report{}, fmt.Errorf("workers=%d: %w", opts.Workers, ErrInvalidOptions)
	}
	if err := graph.Validate(g); err != nil {
		return Report{}, fmt.Errorf("multi-start: %w", err)
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, opts.Restarts)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for r := 0; r < opts.Restarts; r++ {
		r := r
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start, err := RandomTour(g, deriveRNG(opts.Seed, uint64(r)))
			if err != nil {
				return fmt.Errorf("restart %d: %w", r, err)
			}
			results[r] = e.Run(start, opts.Selection)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	rep := summarize(results)
	_ = level.Info(e.cfg.logger).Log(
		"msg", "multi-start finished",
		"restarts", opts.Restarts,
		"workers", workers,
		"selection", opts.Selection,
		"min", rep.Min,
		"max", rep.Max,
		"mean", rep.Mean,
	)

	return rep, nil
}

// summarize folds per-restart results into a Report. results must be non-empty.
func summarize(results []Result) Report {
	rep := Report{Costs: make([]float64, len(results))}
	for r, res := range results {
		rep.Costs[r] = res.Tour.Cost()
		rep.Iterations += res.Iterations
		rep.Evaluated += res.Evaluated
		if res.Converged {
			rep.Converged++
		}
	}

	best := floats.MinIdx(rep.Costs)
	rep.Best = results[best].Tour
	rep.Min = rep.Costs[best]
	rep.Max = floats.Max(rep.Costs)
	if len(rep.Costs) > 1 {
		rep.Mean, rep.StdDev = stat.MeanStdDev(rep.Costs, nil)
	} else {
		rep.Mean = rep.Costs[0]
	}

	return rep
}
