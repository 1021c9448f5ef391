package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/workflow"
)

// Waterfall chains exactly one technique per step — the configured default —
// into a single linear path. It is also the documented fallback for
// unrecognized design names.
type Waterfall struct{}

func (Waterfall) Name() string { return "waterfall" }

func (Waterfall) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	return chain(g, cat, nil)
}

// chain wires one default-technique node per step into a single path.
// decorate, when non-nil, stamps each edge with metadata derived from the
// step it leaves.
func chain(g *workflow.Graph, cat *catalogue.Catalogue, decorate func(from catalogue.Step, e *workflow.Edge)) error {
	var prev *workflow.Node
	var prevStep catalogue.Step
	for _, step := range cat.Steps() {
		nodes, err := stepNodes(g, cat, step, []string{step.Default()})
		if err != nil {
			return err
		}
		if prev != nil {
			e := &workflow.Edge{From: prev.ID, To: nodes[0].ID}
			if decorate != nil {
				decorate(prevStep, e)
			}
			if err := g.AddEdge(e); err != nil {
				return err
			}
		}
		prev, prevStep = nodes[0], step
	}
	return nil
}
