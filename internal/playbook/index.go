package playbook

import (
	"context"
	"fmt"
	"strconv"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/step"
)

// consistencyDelay is how long, in seconds, the first indexing step waits
// for S3 to expose the bad rows written earlier in the same run.
const consistencyDelay = "60"

// IndexSteps builds one Elasticsearch load per enabled target and source.
// Targets without explicit sources load this run's enriched and shredded bad
// rows.
func IndexSteps(ctx context.Context, cfg *config.Config, st Stage) ([]step.Step, error) {
	logger := ctxlog.FromContext(ctx)

	var steps []step.Step
	for _, target := range cfg.Storage.Targets {
		if target.Type != config.TargetTypeElasticsearch {
			continue
		}
		sources := target.Sources
		if sources == nil {
			var err error
			sources, err = defaultSources(cfg, st)
			if err != nil {
				return nil, err
			}
		}
		for _, src := range sources {
			steps = append(steps, indexStep(target, src, st.Jar))
		}
	}

	if len(steps) > 0 {
		if err := requireJar("enrich.versions.hadoop_elasticsearch", st.Jar); err != nil {
			return nil, err
		}
	}
	if len(steps) > 0 && (st.Toggles.Enrich || st.Toggles.Shred) {
		steps[0] = steps[0].WithArgs("--delay", consistencyDelay)
	}

	logger.Debug("Index stage assembled.", "steps", len(steps))
	return steps, nil
}

func defaultSources(cfg *config.Config, st Stage) ([]string, error) {
	buckets := cfg.AWS.S3.Buckets
	var sources []string
	if st.Toggles.Enrich {
		p, err := runFolder("aws.s3.buckets.enriched.bad", buckets.Enriched.Bad, st.Run)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *p)
	}
	if st.Toggles.Shred {
		p, err := runFolder("aws.s3.buckets.shredded.bad", buckets.Shredded.Bad, st.Run)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *p)
	}
	return sources, nil
}

func indexStep(target config.Target, src, jar string) step.Step {
	var port *string
	if target.Port != nil {
		p := strconv.Itoa(*target.Port)
		port = &p
	}
	args := step.Pairs{
		step.Flag("--input", src),
		step.OptionalFlag("--host", target.Host),
		step.OptionalFlag("--port", port),
		step.OptionalFlag("--index", target.Database),
		step.OptionalFlag("--type", target.Table),
		step.Flag("--es_nodes_wan_only", strconv.FormatBool(target.ESNodesWANOnly)),
	}.Flatten()
	return step.NewGeneric(
		fmt.Sprintf("Errors in %s -> Elasticsearch: %s", src, target.Name),
		jar,
		append([]string{ElasticsearchMainClass}, args...),
	)
}
