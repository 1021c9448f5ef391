package config

// Model is the unified, format-agnostic representation of one project
// definition. It is read-only after loading.
type Model struct {
	Project *Project
	// Workers holds the worker definitions in the order the project lists
	// them. This order is the worker-to-worker linking order.
	Workers []*Worker
	// Parameters maps a technique name to its parameter overrides.
	Parameters map[string]map[string]any
}

// Project names the overall run and its worker sequence.
type Project struct {
	Name        string
	WorkerNames []string
}

// Worker is one top-level phase: an ordered step sequence governed by a
// single design.
type Worker struct {
	Name   string
	Design string
	Steps  []*Step
	// Loop optionally declares a bounded feedback edge between two of the
	// worker's steps (reviewer-style iterate cycles).
	Loop *Loop
}

// Step is one stage within a worker and its candidate techniques, in
// configured order. The first technique is the default.
type Step struct {
	Name       string
	Techniques []string
}

// Loop declares a feedback edge from every node of step From back to every
// node of step To.
type Loop struct {
	From string
	To   string
}

// WorkerByName returns the named worker definition, if present.
func (m *Model) WorkerByName(name string) (*Worker, bool) {
	for _, w := range m.Workers {
		if w.Name == name {
			return w, true
		}
	}
	return nil, false
}
