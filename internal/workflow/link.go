package workflow

import (
	"context"

	"github.com/vk/loomgo/internal/ctxlog"
)

// Link composes ordered worker subgraphs into one workflow graph. Every
// terminal node of subgraph k gains an edge to every entry node of subgraph
// k+1: the cross-worker handoff is always "any predecessor output may feed
// any successor entry", regardless of either worker's internal design.
//
// Feedback loops stay contained within their own subgraph, so the combined
// graph is acyclic across worker boundaries whenever the inputs were.
func Link(ctx context.Context, graphs ...*Graph) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)

	linked := New("linked")
	for _, g := range graphs {
		for _, n := range g.Nodes() {
			if err := linked.AddNode(n); err != nil {
				return nil, err
			}
		}
		for _, e := range g.Edges() {
			if err := linked.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i+1 < len(graphs); i++ {
		terminals := graphs[i].Terminals()
		entries := graphs[i+1].Entries()
		for _, t := range terminals {
			for _, e := range entries {
				if err := linked.AddEdge(&Edge{From: t.ID, To: e.ID}); err != nil {
					return nil, err
				}
			}
		}
		logger.Debug("Linked worker boundary.",
			"from", graphs[i].Design(),
			"to", graphs[i+1].Design(),
			"edges", len(terminals)*len(entries))
	}

	logger.Debug("Workflow linking complete.", "nodes", linked.Len(), "edges", len(linked.Edges()))
	return linked, nil
}
