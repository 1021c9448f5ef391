package builder

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/design"
	"github.com/vk/loomgo/internal/workflow"
)

// Incremental grows a worker subgraph one step at a time. No fixed step
// sequence is required up front: callers append steps between construction
// calls and take the graph when done. Appended steps fan out combinatorially
// against the current frontier, the same policy scrum composes with.
type Incremental struct {
	cat      *catalogue.Catalogue
	g        *workflow.Graph
	frontier []*workflow.Node
	next     int
}

// NewIncremental starts an empty scrum-style subgraph for the catalogue's
// worker. The catalogue supplies parameter defaults for appended techniques.
func NewIncremental(cat *catalogue.Catalogue) *Incremental {
	return &Incremental{
		cat: cat,
		g:   workflow.New("scrum"),
	}
}

// Append extends the graph with one step. The step need not be present in
// the catalogue's configured sequence; its ordinal is assigned by append
// order.
func (b *Incremental) Append(ctx context.Context, name string, techniques []string) error {
	if len(techniques) == 0 {
		return config.NewConfigurationError(b.cat.Worker(), "appended step %q lists no techniques", name)
	}
	step := catalogue.Step{Name: name, Ordinal: b.next, Techniques: techniques}
	frontier, err := design.AppendFanOut(ctx, b.g, b.cat, step, b.frontier)
	if err != nil {
		return err
	}
	b.frontier = frontier
	b.next++
	return nil
}

// Graph returns the subgraph built so far. Callers must stop appending once
// they hand the graph to the linker or a traversal.
func (b *Incremental) Graph() *workflow.Graph {
	return b.g
}
