package playbook

import (
	"encoding/base64"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/generator"
	"github.com/karammi/snowplow/internal/storage"
)

// Main classes of the Hadoop jobs.
const (
	EnrichMainClass        = "com.snowplowanalytics.snowplow.enrich.hadoop.EtlJob"
	ShredMainClass         = "com.snowplowanalytics.snowplow.enrich.hadoop.ShredJob"
	ElasticsearchMainClass = "com.snowplowanalytics.snowplow.storage.hadoop.ElasticsearchJob"
)

// S3DistCp source patterns.
const (
	partPattern    = ".*part-.*"
	successPattern = ".*_SUCCESS"
)

// Output is where a stage's job writes and where the data finally lands.
// The two differ when S3DistCp stages the data through HDFS.
type Output struct {
	Step  string
	Final string
}

// Stage is the input shared by the stage assemblers.
type Stage struct {
	Toggles  generator.Toggles
	Run      Run
	Jar      string
	Resolver string
	// Enriched locates the enrich stage's output, whether or not enrich
	// runs in this playbook.
	Enriched Output
}

// EnrichedOutput resolves where enriched events are written. When enrich
// does not run, the final location is the unpartitioned good bucket left by
// a previous run.
func EnrichedOutput(cfg *config.Config, t generator.Toggles, run Run) (Output, error) {
	good, err := config.Require("aws.s3.buckets.enriched.good", cfg.AWS.S3.Buckets.Enriched.Good)
	if err != nil {
		return Output{}, err
	}
	out := Output{Final: good}
	if t.Enrich {
		out.Final = storage.PartitionByRun(good, run.ID)
	}
	out.Step = out.Final
	if t.DistributedCopy {
		out.Step = storage.EnrichedStaging
	}
	return out, nil
}

// runFolder returns the run partition of a required bucket.
func runFolder(field string, bucket *string, run Run) (*string, error) {
	base, err := config.Require(field, bucket)
	if err != nil {
		return nil, err
	}
	p := storage.PartitionByRun(base, run.ID)
	return &p, nil
}

// errorsFolder returns the run partition of an errors bucket, or nil when
// unexpected errors are not tolerated.
func errorsFolder(cfg *config.Config, field string, bucket *string, run Run) (*string, error) {
	retain := cfg.Enrich.ContinueOnUnexpectedError
	if retain {
		if _, err := config.Require(field, bucket); err != nil {
			return nil, err
		}
	}
	return storage.PartitionByRunIf(bucket, run.ID, retain), nil
}

func requireJar(versionField, jar string) error {
	if jar == "" {
		return config.Errorf("missing required configuration field %q", versionField)
	}
	return nil
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
