package tfce

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tfce/adjacency"
)

// EnhanceColumns runs one TFCE invocation per column over a fixed pool of
// workers, each owning its own Engine. The adjacency, weights, ROI and the
// columns are shared read-only. Result i belongs to columns[i].
//
// A running invocation is never interrupted: cancelling ctx only stops
// columns that have not started. The first failing column aborts the batch
// and its error is returned with the column index.
//
// Complexity: O(C·N log N / W) wall time for C columns and W workers.
func EnhanceColumns(ctx context.Context, columns [][]float64, src adjacency.Source, weights []float64, opts ...Option) ([][]float64, error) {
	// 1) Validate options and shared inputs once.
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err = newEngine(src, weights, cfg); err != nil {
		return nil, err
	}
	n := src.Len()
	for i, col := range columns {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %d has %d values for %d elements", ErrLengthMismatch, i, len(col), n)
		}
	}

	workers := cfg.Workers
	if workers > len(columns) {
		workers = len(columns)
	}
	results := make([][]float64, len(columns))
	if workers == 0 {
		return results, nil
	}

	// 2) One engine per worker; engines are not shared.
	engines := make([]*Engine, workers)
	for w := range engines {
		if engines[w], err = newEngine(src, weights, cfg); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	// 3) Producer: hand out column indices until done or cancelled.
	g.Go(func() error {
		defer close(jobs)
		for i := range columns {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	// 4) Workers: each invocation runs to completion once started.
	stats := make([]Stats, workers)
	for w, eng := range engines {
		g.Go(func() error {
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := eng.Enhance(columns[i], nil)
				if err != nil {
					return fmt.Errorf("column %d: %w", i, err)
				}
				results[i] = out
				stats[w].add(eng.LastStats())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cfg.Logger.Error().Err(err).Msg("tfce batch failed")
		return nil, err
	}

	var total Stats
	for _, s := range stats {
		total.add(s)
	}
	cfg.Logger.Info().
		Int("columns", len(columns)).
		Int("workers", workers).
		Int("elements", total.Elements).
		Int("merges", total.Merges).
		Dur("elapsed", time.Since(start)).
		Msg("tfce batch complete")

	return results, nil
}
