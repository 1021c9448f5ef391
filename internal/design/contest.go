package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/workflow"
)

// Contest fans out combinatorially: every technique of step i gets an edge
// to every technique of step i+1, producing every candidate pipeline. A
// later evaluation stage, outside this engine, selects the winner.
type Contest struct{}

func (Contest) Name() string { return "contest" }

func (Contest) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	return fanOutAll(g, cat, nil)
}

// fanOutAll instantiates every candidate technique per step and cross-links
// consecutive step node sets. decorate, when non-nil, stamps metadata on each
// edge given the steps it connects.
func fanOutAll(g *workflow.Graph, cat *catalogue.Catalogue, decorate func(from, to catalogue.Step, e *workflow.Edge)) error {
	var frontier []*workflow.Node
	var prevStep catalogue.Step
	for _, step := range cat.Steps() {
		nodes, err := stepNodes(g, cat, step, step.Techniques)
		if err != nil {
			return err
		}
		var stamp func(*workflow.Edge)
		if decorate != nil {
			from, to := prevStep, step
			stamp = func(e *workflow.Edge) { decorate(from, to, e) }
		}
		if err := crossLink(g, frontier, nodes, stamp); err != nil {
			return err
		}
		frontier, prevStep = nodes, step
	}
	return nil
}
