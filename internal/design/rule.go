package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/workflow"
)

// Rule decides how a worker's step sequence becomes nodes and edges. Compose
// receives an empty graph and the worker's catalogue and fills in the
// subgraph; it must be deterministic for identical inputs.
type Rule interface {
	Name() string
	Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error
}

// stepNodes instantiates one node per listed technique for a step, copying
// each technique's parameters from the catalogue. Returned in technique
// order, which fixes node identity and enumeration order.
func stepNodes(g *workflow.Graph, cat *catalogue.Catalogue, step catalogue.Step, techniques []string) ([]*workflow.Node, error) {
	nodes := make([]*workflow.Node, 0, len(techniques))
	for _, technique := range techniques {
		n := &workflow.Node{
			ID:        workflow.NodeID(cat.Worker(), step.Name, technique, 0),
			Worker:    cat.Worker(),
			Step:      step.Name,
			Technique: technique,
			Ordinal:   step.Ordinal,
			Params:    cat.ParametersFor(technique),
		}
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// crossLink connects every node of from to every node of to. decorate, when
// non-nil, stamps design metadata on each edge before insertion.
func crossLink(g *workflow.Graph, from, to []*workflow.Node, decorate func(*workflow.Edge)) error {
	for _, f := range from {
		for _, t := range to {
			e := &workflow.Edge{From: f.ID, To: t.ID}
			if decorate != nil {
				decorate(e)
			}
			if err := g.AddEdge(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// AppendFanOut extends a graph with one step: a node per candidate technique,
// each wired from every node of the current frontier. It returns the new
// frontier. This is the incremental unit scrum composes with, and the
// builder exposes it for callers that extend a graph between construction
// calls.
func AppendFanOut(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue, step catalogue.Step, frontier []*workflow.Node) ([]*workflow.Node, error) {
	logger := ctxlog.FromContext(ctx)
	nodes, err := stepNodes(g, cat, step, step.Techniques)
	if err != nil {
		return nil, err
	}
	logger.Debug("Appended step fan-out.", "worker", cat.Worker(), "step", step.Name, "nodes", len(nodes))
	if err := crossLink(g, frontier, nodes, nil); err != nil {
		return nil, err
	}
	return nodes, nil
}
