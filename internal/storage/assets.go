package storage

import (
	"fmt"
	"strings"
)

// StandardHostedAssets is the public bucket serving Snowplow jars and scripts.
const StandardHostedAssets = "s3://snowplow-hosted-assets"

// hostedAssetsHomeRegion is served by the standard bucket without a suffix.
const hostedAssetsHomeRegion = "eu-west-1"

// Endpoint returns the regional S3 endpoint.
func Endpoint(region string) string {
	if region == "us-east-1" {
		return "s3.amazonaws.com"
	}
	return "s3-" + region + ".amazonaws.com"
}

// HostedAssetsBucket normalises bucket to end in a slash. When bucket is the
// standard hosted bucket it is replaced by its regional mirror.
func HostedAssetsBucket(standard, bucket, region string) string {
	bucket = strings.TrimSuffix(bucket, "/")
	suffix := ""
	if bucket == strings.TrimSuffix(standard, "/") && region != hostedAssetsHomeRegion {
		suffix = "-" + region
	}
	return bucket + suffix + "/"
}

// Assets holds the jar locations of the pipeline jobs. A jar is empty when
// its version is not configured.
type Assets struct {
	Enrich        string
	Shred         string
	Elasticsearch string
}

// JarVersions selects the job versions to locate.
type JarVersions struct {
	Enrich        *string
	Shred         *string
	Elasticsearch *string
}

// AssetsFor locates the job jars inside an assets bucket. Enrich versions
// before 1.0 were published as the Hadoop ETL.
func AssetsFor(bucket string, v JarVersions) Assets {
	var a Assets
	if v.Enrich != nil {
		middle := "scala-hadoop-enrich/snowplow-hadoop-enrich"
		if strings.HasPrefix(*v.Enrich, "0") {
			middle = "hadoop-etl/snowplow-hadoop-etl"
		}
		a.Enrich = fmt.Sprintf("%s3-enrich/%s-%s.jar", bucket, middle, *v.Enrich)
	}
	if v.Shred != nil {
		a.Shred = fmt.Sprintf("%s3-enrich/scala-hadoop-shred/snowplow-hadoop-shred-%s.jar", bucket, *v.Shred)
	}
	if v.Elasticsearch != nil {
		a.Elasticsearch = fmt.Sprintf("%s4-storage/hadoop-elasticsearch-sink/hadoop-elasticsearch-sink-%s.jar", bucket, *v.Elasticsearch)
	}
	return a
}
