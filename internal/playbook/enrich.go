package playbook

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/step"
	"github.com/karammi/snowplow/internal/storage"
)

// EnrichmentsSchema wraps the enrichment definitions handed to the enrich job.
const EnrichmentsSchema = "iglu:com.snowplowanalytics.snowplow/enrichments/jsonschema/1-0-0"

// S3DistCp grouping patterns that merge many small raw files per day or per
// UrbanAirship export into fewer, larger ones.
const (
	cloudfrontGroupBy   = `.*\.([0-9]+-[0-9]+-[0-9]+)-[0-9]+\..*`
	urbanAirshipGroupBy = `.*(urbanairship).*`
)

// EnrichSteps builds the enrich stage: an optional copy of the raw events
// onto HDFS, the enrich job, and the copies of its output back to S3.
func EnrichSteps(ctx context.Context, cfg *config.Config, st Stage, enrichments []string) ([]step.Step, error) {
	logger := ctxlog.FromContext(ctx)
	buckets := cfg.AWS.S3.Buckets

	if err := requireJar("enrich.versions.hadoop_enrich", st.Jar); err != nil {
		return nil, err
	}
	rawInput, err := config.Require("aws.s3.buckets.raw.processing", buckets.Raw.Processing)
	if err != nil {
		return nil, err
	}
	bad, err := runFolder("aws.s3.buckets.enriched.bad", buckets.Enriched.Bad, st.Run)
	if err != nil {
		return nil, err
	}
	errs, err := errorsFolder(cfg, "aws.s3.buckets.enriched.errors", buckets.Enriched.Errors, st.Run)
	if err != nil {
		return nil, err
	}
	enrichmentsArg, err := EnrichmentsArg(enrichments)
	if err != nil {
		return nil, err
	}

	legacy := cfg.AWS.EMR.Legacy()
	endpoint := storage.Endpoint(cfg.AWS.EMR.Region)
	format := cfg.Collectors.Format
	toHDFS := cfg.Collectors.Supported() && st.Toggles.DistributedCopy
	logger.Debug("Assembling enrich stage.", "collector_format", format, "to_hdfs", toHDFS, "legacy", legacy)

	var steps []step.Step
	input := rawInput
	if toHDFS {
		input = storage.RawStaging
		steps = append(steps, step.NewDistributedCopy(legacy, "S3DistCp: raw S3 -> HDFS",
			rawInput, input, endpoint, groupingArgs(cfg.Collectors)))
	}

	output := st.Enriched.Step
	steps = append(steps, step.NewTransform("Enrich raw events", st.Jar, EnrichMainClass,
		step.Folders{Input: &input, Good: &output, Bad: bad, Errors: errs},
		[]string{
			"--input_format", format,
			"--etl_tstamp", st.Run.Timestamp,
			"--iglu_config", encode(st.Resolver),
			"--enrichments", enrichmentsArg,
		},
	))

	if st.Toggles.DistributedCopy {
		// The part-file pattern does not match _SUCCESS, so the marker needs
		// its own copy.
		steps = append(steps,
			step.NewDistributedCopy(legacy, "S3DistCp: enriched HDFS -> S3",
				st.Enriched.Step, st.Enriched.Final, endpoint,
				append([]string{"--srcPattern", partPattern}, storage.CodecArgs(cfg.Enrich.OutputCompression)...)),
			step.NewDistributedCopy(legacy, "S3DistCp: enriched HDFS _SUCCESS -> S3",
				st.Enriched.Step, st.Enriched.Final, endpoint,
				[]string{"--srcPattern", successPattern}),
		)
	}

	logger.Debug("Enrich stage assembled.", "steps", len(steps))
	return steps, nil
}

// groupingArgs rebalances small raw files into 128MB LZO chunks for the
// formats known to arrive as many small files.
func groupingArgs(c config.Collectors) []string {
	var groupBy string
	switch {
	case c.UrbanAirship():
		groupBy = urbanAirshipGroupBy
	case c.CloudfrontLog():
		groupBy = cloudfrontGroupBy
	default:
		return nil
	}
	return []string{
		"--groupBy", groupBy,
		"--targetSize", "128",
		"--outputCodec", "lzo",
	}
}

// EnrichmentsArg wraps the enrichment definitions in their schema envelope
// and base64-encodes the result. Each definition must be valid JSON.
func EnrichmentsArg(enrichments []string) (string, error) {
	data := make([]json.RawMessage, 0, len(enrichments))
	for i, e := range enrichments {
		if !json.Valid([]byte(e)) {
			return "", config.Errorf("enrichment #%d is not valid JSON", i+1)
		}
		data = append(data, json.RawMessage(e))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		Schema string            `json:"schema"`
		Data   []json.RawMessage `json:"data"`
	}{Schema: EnrichmentsSchema, Data: data})
	if err != nil {
		return "", config.Errorf("failed to encode enrichments: %w", err)
	}
	return base64.StdEncoding.EncodeToString(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
