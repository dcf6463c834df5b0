package playbook

import (
	"context"
	"time"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/generator"
	"github.com/karammi/snowplow/internal/step"
	"github.com/karammi/snowplow/internal/storage"
)

// SchemaName is the Iglu schema name of a playbook.
const SchemaName = "PlaybookConfig"

// Playbook is the datum validated against the PlaybookConfig schema.
type Playbook struct {
	Region      string                `json:"region"`
	Credentials generator.Credentials `json:"credentials"`
	Steps       []step.Step           `json:"steps"`
}

// Compiler implements generator.Generator for playbooks.
type Compiler struct {
	// Now is read once per playbook.
	Now func() time.Time
}

// New returns a Compiler reading the wall clock.
func New() *Compiler {
	return &Compiler{Now: time.Now}
}

// SchemaName implements generator.Generator.
func (c *Compiler) SchemaName(version string) string {
	return generator.SchemaName(SchemaName, generator.FormatAvro, version)
}

// BuildDatum implements generator.Generator.
func (c *Compiler) BuildDatum(ctx context.Context, cfg *config.Config, opts generator.Options) (any, error) {
	steps, err := Steps(ctx, cfg, opts, NewRun(c.Now()))
	if err != nil {
		return nil, err
	}
	return Playbook{
		Region:      cfg.AWS.EMR.Region,
		Credentials: generator.CredentialsFrom(cfg),
		Steps:       steps,
	}, nil
}

// Steps assembles the playbook in order: the debugging and HBase preludes,
// then the enrich, shred and index stages that are toggled on.
func Steps(ctx context.Context, cfg *config.Config, opts generator.Options, run Run) ([]step.Step, error) {
	ctx = ctxlog.With(ctx, "run_id", run.ID)
	logger := ctxlog.FromContext(ctx)
	t := opts.Toggles
	region := cfg.AWS.EMR.Region
	logger.Debug("Compiling playbook.", "debug", opts.Debug, "enrich", t.Enrich, "shred", t.Shred,
		"s3distcp", t.DistributedCopy, "elasticsearch", t.Indexing)

	steps := []step.Step{}
	if opts.Debug {
		steps = append(steps, step.NewDebug(region))
	}
	if hbase := cfg.AWS.EMR.Software.HBase; hbase != nil {
		steps = append(steps, step.NewHBase(*hbase))
	}

	versions := cfg.Enrich.Versions
	assets := storage.AssetsFor(
		storage.HostedAssetsBucket(storage.StandardHostedAssets, cfg.AWS.S3.Buckets.Assets, region),
		storage.JarVersions{
			Enrich:        versions.HadoopEnrich,
			Shred:         versions.HadoopShred,
			Elasticsearch: versions.HadoopElasticsearch,
		},
	)

	st := Stage{Toggles: t, Run: run, Resolver: opts.Resolver}
	if t.Enrich || t.Shred {
		enriched, err := EnrichedOutput(cfg, t, run)
		if err != nil {
			return nil, err
		}
		st.Enriched = enriched
	}

	if t.Enrich {
		st.Jar = assets.Enrich
		enrich, err := EnrichSteps(ctx, cfg, st, opts.Enrichments)
		if err != nil {
			return nil, err
		}
		steps = append(steps, enrich...)
	}
	if t.Shred {
		st.Jar = assets.Shred
		shred, err := ShredSteps(ctx, cfg, st)
		if err != nil {
			return nil, err
		}
		steps = append(steps, shred...)
	}
	if t.Indexing {
		st.Jar = assets.Elasticsearch
		index, err := IndexSteps(ctx, cfg, st)
		if err != nil {
			return nil, err
		}
		steps = append(steps, index...)
	}

	logger.Debug("Playbook compiled.", "steps", len(steps))
	return steps, nil
}
