package hcl

import (
	"context"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
)

// StdinPath selects standard input as the configuration source.
const StdinPath = "-"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Stdin is read when the path is StdinPath. Defaults to os.Stdin.
	Stdin io.Reader
	// EnvFile is an optional dotenv file whose variables are visible to env().
	// Process environment variables take precedence over it.
	EnvFile string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses, evaluates, translates and validates the configuration at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path, "env_file", l.EnvFile)

	lookup, err := l.lookup()
	if err != nil {
		return nil, err
	}

	file, err := l.parse(path)
	if err != nil {
		return nil, err
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(lookup), &root); diags.HasErrors() {
		return nil, config.Errorf("failed to decode configuration file %s: %w", displayName(path), diags)
	}

	cfg := l.translateConfig(ctx, &root)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"collector_format", cfg.Collectors.Format,
		"ami_version", cfg.AWS.EMR.AMIVersion,
		"targets", len(cfg.Storage.Targets))
	return cfg, nil
}

func (l *Loader) parse(path string) (*hcl.File, error) {
	parser := hclparse.NewParser()
	if path != StdinPath {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, config.Errorf("failed to parse configuration file %s: %w", path, diags)
		}
		return file, nil
	}

	in := l.Stdin
	if in == nil {
		in = os.Stdin
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, config.Errorf("failed to read configuration from stdin: %w", err)
	}
	file, diags := parser.ParseHCL(src, displayName(path))
	if diags.HasErrors() {
		return nil, config.Errorf("failed to parse configuration from stdin: %w", diags)
	}
	return file, nil
}

// lookup returns the variable resolver used by env(), layering the process
// environment over the optional dotenv file.
func (l *Loader) lookup() (func(string) (string, bool), error) {
	base := l.LookupEnv
	if base == nil {
		base = os.LookupEnv
	}
	if l.EnvFile == "" {
		return base, nil
	}

	vars, err := godotenv.Read(l.EnvFile)
	if err != nil {
		return nil, config.Errorf("failed to read env file %s: %w", l.EnvFile, err)
	}
	return func(name string) (string, bool) {
		if v, ok := base(name); ok {
			return v, true
		}
		v, ok := vars[name]
		return v, ok
	}, nil
}

func displayName(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
