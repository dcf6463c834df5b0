package playbook

import (
	"github.com/karammi/snowplow/internal/generator"
	"github.com/karammi/snowplow/internal/registry"
)

// Name is the generator name used on the command line.
const Name = "playbook"

// Module registers the playbook generator.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Name, func() generator.Generator { return New() })
}
