package app

import (
	"context"
	"fmt"

	"github.com/vk/loomgo/internal/builder"
	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/export"
	"github.com/vk/loomgo/internal/traverse"
	"github.com/vk/loomgo/internal/workflow"
)

// Run executes the main application logic: build every worker's subgraph,
// link them into one workflow graph, and emit the selected output.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	linked, err := a.buildWorkflow(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Workflow graph built.", "nodes", linked.Len(), "edges", len(linked.Edges()))

	paths := traverse.Paths(linked, traverse.WithMaxRevisits(appConfig.MaxRevisits))

	switch appConfig.Output {
	case OutputDOT:
		if err := export.WriteDOT(a.outW, linked); err != nil {
			return fmt.Errorf("writing DOT output: %w", err)
		}
	case OutputPaths:
		count := 0
		for p := range paths {
			fmt.Fprintln(a.outW, p.String())
			count++
		}
		a.logger.Info("Pipelines enumerated.", "count", count)
	default:
		count, truncated := 0, 0
		for p := range paths {
			count++
			if p.Truncated {
				truncated++
			}
		}
		fmt.Fprintf(a.outW, "project %q: %d nodes, %d edges, %d pipelines (%d truncated)\n",
			a.model.Project.Name, linked.Len(), len(linked.Edges()), count, truncated)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildWorkflow builds one subgraph per worker and links them in project
// order.
func (a *App) buildWorkflow(ctx context.Context) (*workflow.Graph, error) {
	var graphs []*workflow.Graph
	for _, w := range a.model.Workers {
		cat, err := catalogue.New(w, a.model.Parameters)
		if err != nil {
			return nil, err
		}
		rule, fellBack := a.registry.Resolve(ctx, cat.Design())
		if fellBack {
			a.logger.Warn("Worker design fell back to waterfall.", "worker", w.Name, "design", w.Design)
		}
		g, err := builder.Build(ctx, cat, rule)
		if err != nil {
			return nil, fmt.Errorf("building worker %q: %w", w.Name, err)
		}
		if critical := g.CriticalPath(); len(critical) > 0 {
			a.logger.Info("Critical path tagged.", "worker", w.Name, "length", len(critical))
		}
		graphs = append(graphs, g)
	}
	return workflow.Link(ctx, graphs...)
}
