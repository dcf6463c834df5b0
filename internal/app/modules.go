package app

import (
	"github.com/karammi/snowplow/internal/cluster"
	"github.com/karammi/snowplow/internal/playbook"
	"github.com/karammi/snowplow/internal/registry"
)

// coreModules is the definitive list of all generators that are compiled into
// the binary.
var coreModules = []registry.Module{
	&cluster.Module{},
	&playbook.Module{},
}
