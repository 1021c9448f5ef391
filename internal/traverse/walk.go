package traverse

import (
	"iter"

	"github.com/vk/loomgo/internal/workflow"
)

// DefaultMaxRevisits bounds how many times a path may re-enter the same node
// in a cyclic region before the continuation is refused.
const DefaultMaxRevisits = 1

// Evaluator decides at traversal time whether to follow an edge. Used by
// designs whose pruning is an external, traversal-time decision. Returning
// false skips the edge; a skip is pruning, not truncation.
type Evaluator func(from, to *workflow.Node) bool

// Option adjusts a traversal.
type Option func(*options)

type options struct {
	maxRevisits int
	evaluate    Evaluator
}

// WithMaxRevisits sets the per-node revisit bound for cyclic regions.
func WithMaxRevisits(n int) Option {
	return func(o *options) { o.maxRevisits = n }
}

// WithEvaluator installs a traversal-time edge evaluation callback.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) { o.evaluate = e }
}

// Paths returns the lazy sequence of complete pipelines through the graph.
// The sequence is a pure function of the immutable graph and the options:
// re-ranging it restarts from the beginning and yields the same pipelines in
// the same order. Enumeration follows node and edge insertion order.
func Paths(g *workflow.Graph, opts ...Option) iter.Seq[Pipeline] {
	o := options{maxRevisits: DefaultMaxRevisits}
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(Pipeline) bool) {
		visits := make(map[string]int)
		var path []*workflow.Node

		// descend walks from n, yielding one pipeline per terminal
		// reached. It reports false when the consumer stops early.
		var descend func(n *workflow.Node) bool
		descend = func(n *workflow.Node) bool {
			visits[n.ID]++
			path = append(path, n)
			defer func() {
				visits[n.ID]--
				path = path[:len(path)-1]
			}()

			followed := false
			truncated := false
			for _, e := range g.Successors(n.ID) {
				next, _ := g.Node(e.To)
				if o.evaluate != nil && !o.evaluate(n, next) {
					continue
				}
				if visits[next.ID] > o.maxRevisits {
					// Revisiting beyond the bound truncates this
					// path instead of looping forever.
					truncated = true
					continue
				}
				followed = true
				if !descend(next) {
					return false
				}
			}
			if followed {
				return true
			}
			nodes := make([]*workflow.Node, len(path))
			copy(nodes, path)
			return yield(Pipeline{Nodes: nodes, Truncated: truncated})
		}

		for _, entry := range g.Entries() {
			if !descend(entry) {
				return
			}
		}
	}
}
