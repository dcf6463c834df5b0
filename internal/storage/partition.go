package storage

import "strings"

// HDFS staging folders used when S3DistCp moves data on and off the cluster.
const (
	RawStaging      = "hdfs:///local/snowplow/raw-events/"
	EnrichedStaging = "hdfs:///local/snowplow/enriched-events/"
	ShreddedStaging = "hdfs:///local/snowplow/shredded-events/"
)

// PartitionByRun scopes base to a single run so that concurrent and
// historical runs never write to the same prefix.
func PartitionByRun(base, runID string) string {
	return base + "run=" + runID + "/"
}

// PartitionByRunIf is PartitionByRun for optional folders. It returns nil
// when base is unset or retain is false.
func PartitionByRunIf(base *string, runID string, retain bool) *string {
	if base == nil || !retain {
		return nil
	}
	p := PartitionByRun(*base, runID)
	return &p
}

// GlobPath matches every file directly below path.
func GlobPath(path string) string {
	return strings.TrimSuffix(path, "/") + "/*"
}
