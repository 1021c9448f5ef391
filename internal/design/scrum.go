package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/workflow"
)

// Scrum does not require the step sequence to be fixed up front: it composes
// whatever steps the catalogue currently holds by repeated incremental
// appends, and callers may keep extending the graph step-by-step through the
// builder's incremental API between construction calls.
type Scrum struct{}

func (Scrum) Name() string { return "scrum" }

func (Scrum) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	var frontier []*workflow.Node
	for _, step := range cat.Steps() {
		var err error
		frontier, err = AppendFanOut(ctx, g, cat, step, frontier)
		if err != nil {
			return err
		}
	}
	return nil
}
