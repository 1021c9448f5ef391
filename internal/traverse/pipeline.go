package traverse

import (
	"strings"

	"github.com/vk/loomgo/internal/workflow"
)

// Pipeline is one complete root-to-terminal path through the graph: the unit
// handed to the execution layer. Pipelines are disposable views — they
// reference graph nodes and never own or mutate them.
type Pipeline struct {
	Nodes []*workflow.Node
	// Truncated marks a path that ended because the revisit bound refused
	// a continuation, not because it reached a natural terminal.
	Truncated bool
}

// String renders the path as "worker.step.technique -> ..." for diagnostics.
func (p Pipeline) String() string {
	var b strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(n.ID)
	}
	if p.Truncated {
		b.WriteString(" (truncated)")
	}
	return b.String()
}
