package playbook

import (
	"context"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/step"
	"github.com/karammi/snowplow/internal/storage"
)

// ShredSteps builds the shred stage. Enriched events are copied onto HDFS
// only when enrich did not run in the same playbook, since the enrich stage
// already left them staged.
func ShredSteps(ctx context.Context, cfg *config.Config, st Stage) ([]step.Step, error) {
	logger := ctxlog.FromContext(ctx)
	buckets := cfg.AWS.S3.Buckets

	if err := requireJar("enrich.versions.hadoop_shred", st.Jar); err != nil {
		return nil, err
	}
	final, err := runFolder("aws.s3.buckets.shredded.good", buckets.Shredded.Good, st.Run)
	if err != nil {
		return nil, err
	}
	bad, err := runFolder("aws.s3.buckets.shredded.bad", buckets.Shredded.Bad, st.Run)
	if err != nil {
		return nil, err
	}
	errs, err := errorsFolder(cfg, "aws.s3.buckets.shredded.errors", buckets.Shredded.Errors, st.Run)
	if err != nil {
		return nil, err
	}

	legacy := cfg.AWS.EMR.Legacy()
	endpoint := storage.Endpoint(cfg.AWS.EMR.Region)
	output := *final
	if st.Toggles.DistributedCopy {
		output = storage.ShreddedStaging
	}
	copyIn := st.Toggles.DistributedCopy && !st.Toggles.Enrich
	logger.Debug("Assembling shred stage.", "copy_in", copyIn, "legacy", legacy)

	var steps []step.Step
	if copyIn {
		steps = append(steps, step.NewDistributedCopy(legacy, "S3DistCp: enriched S3 -> HDFS",
			st.Enriched.Final, st.Enriched.Step, endpoint,
			[]string{"--srcPattern", partPattern}))
	}

	input := storage.GlobPath(st.Enriched.Step)
	steps = append(steps, step.NewTransform("Shred enriched events", st.Jar, ShredMainClass,
		step.Folders{Input: &input, Good: &output, Bad: bad, Errors: errs},
		[]string{"--iglu_config", encode(st.Resolver)},
	))

	if st.Toggles.DistributedCopy {
		steps = append(steps, step.NewDistributedCopy(legacy, "S3DistCp: shredded HDFS -> S3",
			output, *final, endpoint,
			append([]string{"--srcPattern", partPattern}, storage.CodecArgs(cfg.Enrich.OutputCompression)...)))
	}

	logger.Debug("Shred stage assembled.", "steps", len(steps))
	return steps, nil
}
