package builder

import (
	"context"
	"fmt"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/design"
	"github.com/vk/loomgo/internal/workflow"
)

// Build constructs one worker's subgraph: the rule composes nodes and edges
// from the catalogue, the worker's feedback loop (if declared) is
// materialized as feedback edges, and non-cyclic results get a defensive
// acyclicity check. Identical inputs always produce identical graphs.
func Build(ctx context.Context, cat *catalogue.Catalogue, rule design.Rule) (*workflow.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting subgraph construction.", "worker", cat.Worker(), "design", rule.Name())

	g := workflow.New(rule.Name())
	if err := rule.Compose(ctx, g, cat); err != nil {
		return nil, fmt.Errorf("composing worker %q: %w", cat.Worker(), err)
	}
	logger.Debug("Build: composition complete.", "worker", cat.Worker(), "nodes", g.Len())

	if loop := cat.Loop(); loop != nil {
		if err := addFeedback(g, loop.From, loop.To); err != nil {
			return nil, fmt.Errorf("wiring feedback loop for worker %q: %w", cat.Worker(), err)
		}
		logger.Debug("Build: feedback loop wired.", "worker", cat.Worker(), "from", loop.From, "to", loop.To)
	}

	if !g.Cyclic() {
		if err := g.CheckAcyclic(); err != nil {
			// A cycle out of a non-cyclic design is a builder bug.
			return nil, err
		}
	}

	logger.Debug("Build: subgraph construction successful.", "worker", cat.Worker())
	return g, nil
}

// addFeedback wires every node of step from back to every node of step to.
func addFeedback(g *workflow.Graph, from, to string) error {
	var sources, targets []*workflow.Node
	for _, n := range g.Nodes() {
		switch n.Step {
		case from:
			sources = append(sources, n)
		case to:
			targets = append(targets, n)
		}
	}
	for _, s := range sources {
		for _, t := range targets {
			if err := g.AddEdge(&workflow.Edge{From: s.ID, To: t.ID, Feedback: true}); err != nil {
				return err
			}
		}
	}
	return nil
}
