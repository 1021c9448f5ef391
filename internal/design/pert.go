package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/workflow"
)

// costParam is the technique parameter pert reads as the estimated cost of
// running that technique. Techniques without it cost defaultCost.
const costParam = "cost"

const defaultCost = 1.0

// Pert fans out like contest, weights each edge with the estimated cost of
// its target technique, and tags the critical path — the longest
// cumulative-weight path from entry to terminal — as graph metadata.
type Pert struct{}

func (Pert) Name() string { return "pert" }

func (Pert) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	err := fanOutAll(g, cat, func(from, to catalogue.Step, e *workflow.Edge) {
		target, _ := g.Node(e.To)
		e.Weight = costOf(target.Params)
	})
	if err != nil {
		return err
	}
	critical := criticalPath(g)
	g.SetCriticalPath(critical)
	ctxlog.FromContext(ctx).Debug("Tagged critical path.", "worker", cat.Worker(), "length", len(critical))
	return nil
}

// costOf reads the cost parameter, tolerating the numeric types the loaders
// produce.
func costOf(params map[string]any) float64 {
	switch v := params[costParam].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return defaultCost
	}
}

// criticalPath computes the longest cumulative-weight path over non-feedback
// edges. Insertion order of a freshly composed worker subgraph is
// topological, so a single forward relaxation pass suffices. Ties keep the
// earliest-inserted predecessor, which keeps the result deterministic.
func criticalPath(g *workflow.Graph) []string {
	dist := make(map[string]float64)
	prev := make(map[string]string)
	relaxed := make(map[string]bool)

	for _, n := range g.Nodes() {
		for _, e := range g.Successors(n.ID) {
			if e.Feedback {
				continue
			}
			d := dist[n.ID] + e.Weight
			if !relaxed[e.To] || d > dist[e.To] {
				dist[e.To] = d
				prev[e.To] = n.ID
				relaxed[e.To] = true
			}
		}
	}

	var end string
	var best float64
	for _, t := range g.Terminals() {
		if end == "" || dist[t.ID] > best {
			end, best = t.ID, dist[t.ID]
		}
	}
	if end == "" {
		return nil
	}

	var path []string
	for id := end; id != ""; id = prev[id] {
		path = append(path, id)
	}
	// Reverse into entry-to-terminal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
