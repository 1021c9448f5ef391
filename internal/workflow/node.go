package workflow

import "fmt"

// Node is one instantiated technique within the graph. Identity is the
// (worker, step, technique, branch) tuple; Branch disambiguates the same
// technique instantiated on multiple incoming branches. Nodes are immutable
// after graph construction.
type Node struct {
	ID        string
	Worker    string
	Step      string
	Technique string
	Branch    int
	// Ordinal is the owning step's position within its worker.
	Ordinal int
	// Params is the technique's parameter mapping, copied from the
	// catalogue at build time. Read-only afterwards.
	Params map[string]any
}

// NodeID formats the canonical node identity.
func NodeID(worker, step, technique string, branch int) string {
	return fmt.Sprintf("%s.%s.%s[%d]", worker, step, technique, branch)
}

// Edge is a permitted data-flow transition: To may consume From's output
// only after From completes.
type Edge struct {
	From string
	To   string
	// Weight is the estimated cost of reaching To, used by cost-weighted
	// designs. Zero means unweighted.
	Weight float64
	// Deliverable names the explicit handoff boundary this edge crosses.
	// Set by designs that mark step outputs as decoupling points; empty
	// otherwise. It never changes topology.
	Deliverable string
	// Feedback marks a sanctioned loop edge. Feedback edges are ignored by
	// entry/terminal classification and the cycle check, and are bounded
	// during traversal.
	Feedback bool
}
