package workflow

import "fmt"

// Graph is the node/edge set for one worker subgraph or one linked workflow.
// Construction is single-threaded; after it finishes the graph is immutable
// and safe for concurrent readers.
type Graph struct {
	design string

	nodes map[string]*Node
	order []*Node

	edges []*Edge
	out   map[string][]*Edge
	in    map[string][]*Edge

	cyclic   bool
	critical []string
}

// New creates an empty graph tagged with the design that shaped it.
func New(design string) *Graph {
	return &Graph{
		design: design,
		nodes:  make(map[string]*Node),
		out:    make(map[string][]*Edge),
		in:     make(map[string][]*Edge),
	}
}

// Design returns the name of the design that produced this graph.
func (g *Graph) Design() string { return g.design }

// AddNode inserts a node. Duplicate identities are an error: every node is
// created exactly once during a build.
func (g *Graph) AddNode(n *Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("duplicate node: %s", n.ID)
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n)
	return nil
}

// AddEdge inserts a directed edge. Both endpoints must already exist and
// self-referential edges are rejected.
func (g *Graph) AddEdge(e *Edge) error {
	if e.From == e.To {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", e.From, e.To)
	}
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("source node not found: %s", e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("destination node not found: %s", e.To)
	}
	for _, existing := range g.out[e.From] {
		if existing.To == e.To {
			return fmt.Errorf("duplicate edge: %s -> %s", e.From, e.To)
		}
	}
	g.edges = append(g.edges, e)
	g.out[e.From] = append(g.out[e.From], e)
	g.in[e.To] = append(g.in[e.To], e)
	if e.Feedback {
		g.cyclic = true
	}
	return nil
}

// Node returns the node with the given identity.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the node count.
func (g *Graph) Len() int { return len(g.order) }

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Successors returns the outgoing edges of a node in insertion order.
func (g *Graph) Successors(id string) []*Edge {
	return g.out[id]
}

// Predecessors returns the incoming edges of a node in insertion order.
func (g *Graph) Predecessors(id string) []*Edge {
	return g.in[id]
}

// Entries returns the nodes with no non-feedback predecessors, in insertion
// order. These are the roots traversal starts from.
func (g *Graph) Entries() []*Node {
	var entries []*Node
	for _, n := range g.order {
		if !g.hasForwardEdge(g.in[n.ID]) {
			entries = append(entries, n)
		}
	}
	return entries
}

// Terminals returns the nodes with no non-feedback successors, in insertion
// order.
func (g *Graph) Terminals() []*Node {
	var terminals []*Node
	for _, n := range g.order {
		if !g.hasForwardEdge(g.out[n.ID]) {
			terminals = append(terminals, n)
		}
	}
	return terminals
}

func (g *Graph) hasForwardEdge(edges []*Edge) bool {
	for _, e := range edges {
		if !e.Feedback {
			return true
		}
	}
	return false
}

// Cyclic reports whether the graph carries any feedback edge.
func (g *Graph) Cyclic() bool { return g.cyclic }

// SetCriticalPath records the cost-weighted critical path as graph metadata.
func (g *Graph) SetCriticalPath(ids []string) {
	g.critical = ids
}

// CriticalPath returns the node identities of the critical path, if one was
// computed by the graph's design.
func (g *Graph) CriticalPath() []string {
	out := make([]string, len(g.critical))
	copy(out, g.critical)
	return out
}
