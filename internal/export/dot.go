package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/loomgo/internal/workflow"
)

// WriteDOT serializes the graph in Graphviz DOT form: one cluster per
// (worker, step) with its nodes ranked together, and a directed edge per
// graph edge. Output order follows node and edge insertion order, so the
// same graph always renders the same bytes.
func WriteDOT(w io.Writer, g *workflow.Graph) error {
	var b strings.Builder
	b.WriteString("digraph workflow {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=box];\n")

	for _, group := range stepGroups(g) {
		fmt.Fprintf(&b, "\tsubgraph \"cluster_%s_%s\" {\n", group.worker, group.step)
		fmt.Fprintf(&b, "\t\tlabel=\"%s / %s\";\n", group.worker, group.step)
		b.WriteString("\t\trank=same;\n")
		for _, n := range group.nodes {
			fmt.Fprintf(&b, "\t\t%q [label=%q];\n", n.ID, n.Technique)
		}
		b.WriteString("\t}\n")
	}

	for _, e := range g.Edges() {
		attrs := edgeAttrs(e)
		if attrs == "" {
			fmt.Fprintf(&b, "\t%q -> %q;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&b, "\t%q -> %q [%s];\n", e.From, e.To, attrs)
		}
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func edgeAttrs(e *workflow.Edge) string {
	var attrs []string
	if e.Feedback {
		attrs = append(attrs, "style=dashed", "constraint=false")
	}
	if e.Deliverable != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Deliverable))
	}
	if e.Weight != 0 {
		attrs = append(attrs, fmt.Sprintf("label=\"%g\"", e.Weight))
	}
	return strings.Join(attrs, ", ")
}

type group struct {
	worker string
	step   string
	nodes  []*workflow.Node
}

// stepGroups buckets nodes by (worker, step) in first-seen order.
func stepGroups(g *workflow.Graph) []*group {
	var groups []*group
	index := make(map[string]*group)
	for _, n := range g.Nodes() {
		key := n.Worker + "\x00" + n.Step
		grp, ok := index[key]
		if !ok {
			grp = &group{worker: n.Worker, step: n.Step}
			index[key] = grp
			groups = append(groups, grp)
		}
		grp.nodes = append(grp.nodes, n)
	}
	return groups
}
