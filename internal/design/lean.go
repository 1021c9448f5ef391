package design

import (
	"context"

	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/workflow"
)

// efficientParam is the boolean technique parameter lean's default filter
// consults. Absent means efficient.
const efficientParam = "efficient"

// EfficiencyFilter reports whether a technique is resource-efficient enough
// to keep. Supplied via configuration by the caller; Lean falls back to
// reading the "efficient" parameter when none is given.
type EfficiencyFilter func(technique string, params map[string]any) bool

// Lean fans out combinatorially like contest but discards techniques the
// efficiency filter rejects before any edges are added. A step whose whole
// menu is rejected collapses to a single pass-through node so downstream
// steps still find a predecessor.
type Lean struct {
	Keep EfficiencyFilter
}

func (Lean) Name() string { return "lean" }

func (l Lean) Compose(ctx context.Context, g *workflow.Graph, cat *catalogue.Catalogue) error {
	logger := ctxlog.FromContext(ctx)
	keep := l.Keep
	if keep == nil {
		keep = defaultEfficiency
	}

	var frontier []*workflow.Node
	for _, step := range cat.Steps() {
		var techniques []string
		for _, technique := range step.Techniques {
			if keep(technique, cat.ParametersFor(technique)) {
				techniques = append(techniques, technique)
			}
		}
		if dropped := len(step.Techniques) - len(techniques); dropped > 0 {
			logger.Debug("Discarded inefficient techniques.", "worker", cat.Worker(), "step", step.Name, "dropped", dropped)
		}
		if len(techniques) == 0 {
			techniques = []string{catalogue.PassThrough}
		}
		nodes, err := stepNodes(g, cat, step, techniques)
		if err != nil {
			return err
		}
		if err := crossLink(g, frontier, nodes, nil); err != nil {
			return err
		}
		frontier = nodes
	}
	return nil
}

func defaultEfficiency(technique string, params map[string]any) bool {
	if v, ok := params[efficientParam].(bool); ok {
		return v
	}
	return true
}
