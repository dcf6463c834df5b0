package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/karammi/snowplow/internal/generator"
)

// Factory builds a fresh generator for a single invocation.
type Factory func() generator.Generator

// Module is the interface that all artifact packages implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the generator factories of a single application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds name to factory. Registering a name twice is a programming
// error and panics.
func (r *Registry) Register(name string, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("generator '%s' registered without a factory", name))
	}
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("generator with name '%s' already registered", name))
	}
	slog.Debug("Registering generator.", "name", name)
	r.factories[name] = factory
}

// Lookup returns a new generator for name.
func (r *Registry) Lookup(name string) (generator.Generator, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator '%s'", name)
	}
	return factory(), nil
}

// Names returns the registered generator names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
