// Package registry holds the fixed, ordered set of evaluation metric names.
//
// The registry is supplied externally through configuration. Metric identity
// is the name; the registry order defines the default column order in any
// tabular output.
package registry

import "fmt"

// Registry is an immutable, ordered collection of metric names.
type Registry struct {
	names []string
	index map[string]int
}

// New builds a Registry from an ordered list of metric names.
// Duplicate or empty names are rejected.
func New(names []string) (*Registry, error) {
	r := &Registry{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty metric name", ErrInvalidRegistry)
		}
		if _, ok := r.index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate metric %q", ErrInvalidRegistry, name)
		}
		r.index[name] = len(r.names)
		r.names = append(r.names, name)
	}
	return r, nil
}

// Names returns the metric names in registry order. The returned slice is a
// copy; callers may modify it freely.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name is a registered metric.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Position returns the registry position of name, or -1 if unregistered.
func (r *Registry) Position(name string) int {
	i, ok := r.index[name]
	if !ok {
		return -1
	}
	return i
}

// Len returns the number of registered metrics.
func (r *Registry) Len() int {
	return len(r.names)
}
