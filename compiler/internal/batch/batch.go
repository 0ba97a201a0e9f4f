package batch

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lexiscope/lexiscope/compiler/internal/analysis"
	"github.com/lexiscope/lexiscope/compiler/internal/lang"
)

// Outcome is the analysis of one file.
type Outcome struct {
	File    File
	Result  *analysis.Result
	Elapsed time.Duration
}

// Run analyzes files with at most workers goroutines (<= 0 means GOMAXPROCS).
// Outcomes come back in the order of files. Each analysis is independent and
// only shares the read-only cfg. If ctx is cancelled, unscheduled files are
// skipped and ctx.Err() is returned.
func Run(ctx context.Context, files []File, cfg *lang.Config, workers int) ([]Outcome, error) {
	if cfg == nil {
		cfg = lang.Default()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		if gctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res := analysis.Analyze(f.Src, cfg)
			out[i] = Outcome{File: f, Result: res, Elapsed: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Failed counts outcomes with at least one finding.
func Failed(outs []Outcome) int {
	n := 0
	for _, o := range outs {
		if !o.Result.Valid() {
			n++
		}
	}
	return n
}
