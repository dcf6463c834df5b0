package generator

import (
	"context"
	"fmt"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/schema"
)

// Vendor owns the Dataflow Runner schemas.
const Vendor = "com.snowplowanalytics.dataflowrunner"

// FormatAvro is the schema format of every artifact.
const FormatAvro = "avro"

// Generator builds one kind of artifact.
type Generator interface {
	// SchemaName returns the Iglu name of the schema at version.
	SchemaName(version string) string
	// BuildDatum derives the artifact's datum.
	BuildDatum(ctx context.Context, cfg *config.Config, opts Options) (any, error)
}

// SchemaName formats a Dataflow Runner schema name.
func SchemaName(name, format, version string) string {
	return fmt.Sprintf("%s/%s/%s/%s", Vendor, name, format, version)
}

// Generate fetches the schema at version, builds the datum with gen,
// validates it and writes the enveloped artifact to destination. Nothing is
// written unless the datum is valid.
func Generate(ctx context.Context, gen Generator, fetcher schema.Fetcher, cfg *config.Config, version, destination string, opts Options) error {
	if gen == nil {
		panic("generator: Generate called without a concrete Generator")
	}
	name := gen.SchemaName(version)
	ctx = ctxlog.With(ctx, "schema", name)
	logger := ctxlog.FromContext(ctx)

	text, err := fetcher.Fetch(ctx, name)
	if err != nil {
		return err
	}
	avroSchema, err := schema.Parse(text)
	if err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}
	logger.Debug("Schema parsed.")

	datum, err := gen.BuildDatum(ctx, cfg, opts)
	if err != nil {
		return err
	}

	if err := avroSchema.Validate(datum); err != nil {
		return config.Errorf("config could not be validated against the schema %s: %w", name, err)
	}
	logger.Debug("Datum validated against schema.")

	if err := WriteArtifact(destination, Envelope{Schema: "iglu:" + name, Data: datum}); err != nil {
		return err
	}
	logger.Info("Artifact written.", "path", destination)
	return nil
}
