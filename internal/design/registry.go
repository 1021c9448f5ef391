package design

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/loomgo/internal/ctxlog"
)

// DesignError reports a design name outside the recognized variants. Callers
// that can tolerate it recover by falling back to waterfall via Resolve.
type DesignError struct {
	Name string
}

// Error implements the error interface.
func (e *DesignError) Error() string {
	return fmt.Sprintf("unrecognized design %q", e.Name)
}

// Registry maps design names to rule constructors. It is explicit, passed-in
// state owned by the builder's caller and scoped to one project run.
type Registry struct {
	ctors map[string]func() Rule
}

// NewRegistry returns a registry holding the eight recognized variants.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]func() Rule)}
	r.Register("waterfall", func() Rule { return Waterfall{} })
	r.Register("kanban", func() Rule { return Kanban{} })
	r.Register("contest", func() Rule { return Contest{} })
	r.Register("survey", func() Rule { return Survey{} })
	r.Register("pert", func() Rule { return Pert{} })
	r.Register("agile", func() Rule { return Agile{} })
	r.Register("lean", func() Rule { return Lean{} })
	r.Register("scrum", func() Rule { return Scrum{} })
	return r
}

// Register adds or replaces a named rule constructor.
func (r *Registry) Register(name string, ctor func() Rule) {
	r.ctors[name] = ctor
}

// Names returns the registered design names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named rule, or a DesignError for unknown names.
func (r *Registry) Lookup(name string) (Rule, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, &DesignError{Name: name}
	}
	return ctor(), nil
}

// Resolve returns the named rule, falling back to waterfall for unrecognized
// names. The fallback is surfaced twice: as a warn-level log and as the
// returned flag, so callers can observe it without scraping logs. An empty
// name is the documented default and resolves to waterfall silently.
func (r *Registry) Resolve(ctx context.Context, name string) (Rule, bool) {
	if name == "" {
		rule, _ := r.Lookup("waterfall")
		return rule, false
	}
	rule, err := r.Lookup(name)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Unrecognized design, falling back to waterfall.", "design", name)
		fallback, _ := r.Lookup("waterfall")
		return fallback, true
	}
	return rule, false
}
