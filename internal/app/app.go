package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/registry"
	"github.com/karammi/snowplow/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	fetcher  schema.Fetcher
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Nothing is read from disk until Run.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All generators registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error (mismatch between generators), so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	location := appConfig.SchemaRegistry
	if location == "" {
		location = schema.DefaultRegistry
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
		fetcher:  schema.NewFetcher(location),
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
