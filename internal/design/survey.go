package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/workflow"
)

// Survey produces the same combinatorial topology as contest, but the graph
// is marked average-all rather than select-best. Only downstream aggregation
// semantics differ, and those live outside this engine.
type Survey struct{}

func (Survey) Name() string { return "survey" }

func (Survey) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	return fanOutAll(g, cat, nil)
}
