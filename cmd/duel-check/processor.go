// processor.go - Board evaluation across the worker pool
package main

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/duel-check/internal/config"
	"github.com/lgbarn/duel-check/internal/engine"
	"github.com/lgbarn/duel-check/internal/output"
	"github.com/lgbarn/duel-check/internal/parser"
	"github.com/lgbarn/duel-check/internal/worker"
)

// processBoards evaluates every path and returns one result per path, in
// argument order. Per-board failures are carried in Result.Err; the returned
// error is only set when the run itself was cancelled.
func processBoards(ctx context.Context, cfg *config.Config, paths []string, logger *zap.Logger) ([]output.Result, error) {
	workers := cfg.Workers
	if workers > len(paths) {
		workers = len(paths)
	}
	pool := worker.NewPool(evaluateBoard,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(paths)),
	)
	pool.Start()

	g, gctx := errgroup.WithContext(ctx)

	// Producer
	g.Go(func() error {
		defer pool.Close()
		for i, path := range paths {
			if err := pool.SubmitContext(gctx, worker.WorkItem{Path: path, Index: i}); err != nil {
				pool.Stop()
				return err
			}
		}
		return nil
	})

	// Consumer
	results := make([]output.Result, len(paths))
	g.Go(func() error {
		for r := range pool.Results() {
			if r.Error != nil {
				logger.Warn("board_failed", zap.String("path", r.Path), zap.Error(r.Error))
			} else {
				logger.Debug("board_evaluated",
					zap.String("path", r.Path),
					zap.Stringer("outcome", r.Verdict.Outcome),
					zap.Bool("white_captures", r.Verdict.WhiteCaptures),
					zap.Bool("black_captures", r.Verdict.BlackCaptures),
				)
			}
			results[r.Index] = output.Result{
				Index:   r.Index,
				Path:    r.Path,
				Verdict: r.Verdict,
				Err:     r.Error,
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// evaluateBoard reads, parses and judges one board file.
func evaluateBoard(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Path: item.Path, Index: item.Index}
	board, err := parser.ParseFile(item.Path)
	if err != nil {
		result.Error = err
		return result
	}
	result.Verdict = engine.Judge(board)
	return result
}

// runStats counts what a run produced.
type runStats struct {
	total    int
	failed   int
	outcomes map[string]int
}

func summarize(results []output.Result) runStats {
	stats := runStats{total: len(results), outcomes: make(map[string]int)}
	for _, r := range results {
		if r.Err != nil {
			stats.failed++
			continue
		}
		stats.outcomes[r.Verdict.Outcome.String()]++
	}
	return stats
}
