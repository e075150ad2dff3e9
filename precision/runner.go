package precision

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Runner sweeps cases against one executor. Parallel bounds how many
// cases run at once; zero or less means no bound. Sharing the oracle
// across goroutines is safe: formats are immutable and derived
// expansions are built once.
type Runner struct {
	Executor Executor
	Log      *slog.Logger
	Parallel int
}

// Run executes every case and returns the results in case order. A
// case that fails its check is a result, not an error; Run returns an
// error only when a case cannot run at all, and cancels the remaining
// cases when one does.
func (r *Runner) Run(ctx context.Context, cases []*Case) ([]*Result, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	results := make([]*Result, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	if r.Parallel > 0 {
		g.SetLimit(r.Parallel)
	}
	for i, c := range cases {
		g.Go(func() error {
			res, err := c.Run(gctx, r.Executor)
			if err != nil {
				return fmt.Errorf("case %s: %w", c.Name(), err)
			}
			results[i] = res
			if res.Failure != nil {
				log.Info("case failed", "case", c.Name(), "sample", res.Failure.SampleIndex)
			} else {
				log.Debug("case passed", "case", c.Name(), "samples", res.Checked)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize counts passed and failed results.
func Summarize(results []*Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
