package catalogue

import (
	"github.com/vk/loomgo/internal/config"
)

// PassThrough is the recognized no-op technique name. A step whose menu is
// only PassThrough still produces a node, so downstream steps always find a
// predecessor.
const PassThrough = "none"

// Step is one stage of a worker: its name, ordinal position, and candidate
// techniques in configured order. The first technique is the default.
type Step struct {
	Name       string
	Ordinal    int
	Techniques []string
}

// Default returns the step's default technique (the first configured one).
func (s Step) Default() string {
	return s.Techniques[0]
}

// Catalogue is the immutable mapping from a worker's steps to their candidate
// techniques, plus per-technique parameter defaults. It is constructed once
// from configuration and read-only afterwards, so concurrent lookups need no
// locking.
type Catalogue struct {
	worker  string
	design  string
	steps   []Step
	ordinal map[string]int
	params  map[string]map[string]any
	loop    *config.Loop
}

// New validates a worker definition against the project's parameter sections
// and returns its catalogue. A worker with zero steps, a step with zero
// techniques, or a loop referencing an unknown step is a ConfigurationError.
func New(worker *config.Worker, parameters map[string]map[string]any) (*Catalogue, error) {
	if len(worker.Steps) == 0 {
		return nil, config.NewConfigurationError(worker.Name, "worker has zero steps")
	}

	c := &Catalogue{
		worker:  worker.Name,
		design:  worker.Design,
		ordinal: make(map[string]int, len(worker.Steps)),
		params:  make(map[string]map[string]any, len(parameters)),
		loop:    worker.Loop,
	}

	for i, s := range worker.Steps {
		if len(s.Techniques) == 0 {
			return nil, config.NewConfigurationError(worker.Name, "step %q lists no techniques", s.Name)
		}
		if _, dup := c.ordinal[s.Name]; dup {
			return nil, config.NewConfigurationError(worker.Name, "duplicate step %q", s.Name)
		}
		c.ordinal[s.Name] = i
		techniques := make([]string, len(s.Techniques))
		copy(techniques, s.Techniques)
		c.steps = append(c.steps, Step{Name: s.Name, Ordinal: i, Techniques: techniques})
	}

	if worker.Loop != nil {
		if _, ok := c.ordinal[worker.Loop.From]; !ok {
			return nil, config.NewConfigurationError(worker.Name, "loop references unknown step %q", worker.Loop.From)
		}
		if _, ok := c.ordinal[worker.Loop.To]; !ok {
			return nil, config.NewConfigurationError(worker.Name, "loop references unknown step %q", worker.Loop.To)
		}
	}

	for technique, p := range parameters {
		copied := make(map[string]any, len(p))
		for k, v := range p {
			copied[k] = v
		}
		c.params[technique] = copied
	}

	return c, nil
}

// Worker returns the owning worker's name.
func (c *Catalogue) Worker() string { return c.worker }

// Design returns the configured design name, unvalidated. Resolution against
// the recognized variants happens in the design registry.
func (c *Catalogue) Design() string { return c.design }

// Loop returns the worker's feedback declaration, or nil.
func (c *Catalogue) Loop() *config.Loop { return c.loop }

// Steps returns the worker's steps in configured order.
func (c *Catalogue) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// Step returns the named step.
func (c *Catalogue) Step(name string) (Step, bool) {
	i, ok := c.ordinal[name]
	if !ok {
		return Step{}, false
	}
	return c.steps[i], true
}

// TechniquesFor returns the candidate technique names for a step. Unknown
// steps are a ConfigurationError.
func (c *Catalogue) TechniquesFor(step string) ([]string, error) {
	i, ok := c.ordinal[step]
	if !ok {
		return nil, config.NewConfigurationError(c.worker, "unknown step %q", step)
	}
	out := make([]string, len(c.steps[i].Techniques))
	copy(out, c.steps[i].Techniques)
	return out, nil
}

// ParametersFor returns a copy of the technique's parameter mapping. A
// technique without a parameter section, including the pass-through
// technique, gets an empty mapping.
func (c *Catalogue) ParametersFor(technique string) map[string]any {
	src := c.params[technique]
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
