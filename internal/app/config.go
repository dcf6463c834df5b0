package app

import (
	"errors"
	"slices"

	"github.com/karammi/snowplow/internal/cluster"
	"github.com/karammi/snowplow/internal/playbook"
)

// Generator names.
const (
	GeneratorCluster  = cluster.Name
	GeneratorPlaybook = playbook.Name
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Generator  string // emr-cluster or playbook
	ConfigPath string // hcl file, or "-" for stdin
	EnvFile    string

	Destination    string
	SchemaVersion  string
	SchemaRegistry string

	// Playbook only.
	EnrichmentsDir string
	ResolverPath   string
	Debug          bool
	Skip           []string

	LogFormat string
	LogLevel  string
}

// NewConfig checks the settings that every generator depends on.
func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains([]string{GeneratorCluster, GeneratorPlaybook}, cfg.Generator) {
		return nil, errors.New("Generator must be 'emr-cluster' or 'playbook'")
	}
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Destination == "" {
		return nil, errors.New("Destination is a required configuration field and cannot be empty")
	}
	if cfg.SchemaVersion == "" {
		return nil, errors.New("SchemaVersion is a required configuration field and cannot be empty")
	}
	if cfg.Generator == GeneratorPlaybook && cfg.ResolverPath == "" {
		return nil, errors.New("ResolverPath is required to generate a playbook")
	}

	return &cfg, nil
}
