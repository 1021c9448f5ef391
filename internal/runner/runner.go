package runner

import (
	"context"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/traverse"
)

// Executor runs one technique. Implemented by the external ML/statistics
// layer; the result object is opaque to this engine.
type Executor interface {
	Execute(ctx context.Context, technique string, params map[string]any, input any) (any, error)
}

// Result is the outcome of running one pipeline end to end.
type Result struct {
	Pipeline traverse.Pipeline
	// Output is the final node's output, opaque to the engine.
	Output any
	// Err is the first execution failure along the pipeline, if any. A
	// failed pipeline does not stop its siblings.
	Err error
}

// RunAll executes every enumerated pipeline against the executor, chaining
// each node's output into the next node's input, with at most parallelism
// pipelines in flight. Results are returned in enumeration order. Only
// context cancellation aborts the run; per-pipeline failures are recorded in
// their Result.
func RunAll(ctx context.Context, pipelines iter.Seq[traverse.Pipeline], exec Executor, parallelism int) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	if parallelism < 1 {
		parallelism = 1
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(parallelism)

	var mu sync.Mutex
	var results []Result

	index := 0
	for p := range pipelines {
		p, slot := p, index
		index++
		mu.Lock()
		results = append(results, Result{Pipeline: p})
		mu.Unlock()

		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			output, err := runOne(ctx, p, exec)
			mu.Lock()
			results[slot].Output = output
			results[slot].Err = err
			mu.Unlock()
			if err != nil {
				logger.Debug("Pipeline execution failed.", "pipeline", p.String(), "error", err)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("All pipelines executed.", "count", len(results))
	return results, nil
}

// runOne walks one pipeline sequentially, feeding each node's output forward.
func runOne(ctx context.Context, p traverse.Pipeline, exec Executor) (any, error) {
	var data any
	for _, n := range p.Nodes {
		if n.Technique == catalogue.PassThrough {
			continue
		}
		out, err := exec.Execute(ctx, n.Technique, n.Params, data)
		if err != nil {
			return nil, err
		}
		data = out
	}
	return data, nil
}
