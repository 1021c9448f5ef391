package workflow

import "fmt"

// CycleError reports an unexpected cycle in a graph built by a non-cyclic
// design. It indicates a builder bug, not bad input, and is always fatal.
type CycleError struct {
	NodeID string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected involving %q", e.NodeID)
}

// CheckAcyclic verifies the graph has no cycle among its non-feedback edges
// using depth-first search. Feedback edges are the sanctioned exception and
// are skipped.
func (g *Graph) CheckAcyclic() error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	var visit func(id string) error
	visit = func(id string) error {
		visiting[id] = true
		for _, e := range g.out[id] {
			if e.Feedback {
				continue
			}
			if visiting[e.To] {
				return &CycleError{NodeID: e.To}
			}
			if !visited[e.To] {
				if err := visit(e.To); err != nil {
					return err
				}
			}
		}
		delete(visiting, id)
		visited[id] = true
		return nil
	}

	for _, n := range g.order {
		if !visited[n.ID] {
			if err := visit(n.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
