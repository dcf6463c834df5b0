package app

import (
	"context"
	"fmt"

	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/generator"
)

// Run loads the inputs and writes the requested artifact.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("generator", a.config.Generator))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	gen, err := a.registry.Lookup(a.config.Generator)
	if err != nil {
		return err
	}

	cfg, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.")

	opts, err := a.options(ctx)
	if err != nil {
		return err
	}

	if err := generator.Generate(ctx, gen, a.fetcher, cfg, a.config.SchemaVersion, a.config.Destination, opts); err != nil {
		return err
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// options gathers the generator inputs that live outside the configuration
// file. Only playbooks read enrichments and a resolver.
func (a *App) options(ctx context.Context) (generator.Options, error) {
	if a.config.Generator != GeneratorPlaybook {
		return generator.Options{}, nil
	}

	enrichments, err := loadEnrichments(ctx, a.config.EnrichmentsDir)
	if err != nil {
		return generator.Options{}, err
	}
	resolver, err := loadResolver(ctx, a.config.ResolverPath)
	if err != nil {
		return generator.Options{}, err
	}

	return generator.Options{
		Debug:       a.config.Debug,
		Toggles:     generator.TogglesFromSkip(a.config.Skip),
		Resolver:    resolver,
		Enrichments: enrichments,
	}, nil
}
