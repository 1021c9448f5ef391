package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/workflow"
)

// Kanban is topologically identical to waterfall, but every step boundary is
// an explicit, named deliverable the execution layer can decouple at. The
// deliverable name rides on the edge metadata; node and edge topology do not
// change.
type Kanban struct{}

func (Kanban) Name() string { return "kanban" }

func (Kanban) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	return chain(g, cat, func(from catalogue.Step, e *workflow.Edge) {
		e.Deliverable = from.Name
	})
}
