package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/workflow"
)

// Agile builds the full candidate graph like contest. Pruning of edges
// beyond the first step is a traversal-time decision made by an external
// evaluation callback, never a construction-time one, so composition here is
// pure fan-out.
type Agile struct{}

func (Agile) Name() string { return "agile" }

func (Agile) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	return fanOutAll(g, cat, nil)
}
