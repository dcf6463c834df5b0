package config

// Collector formats understood by the enrich job.
const (
	FormatCloudfront       = "cloudfront"
	FormatCljTomcat        = "clj-tomcat"
	FormatThrift           = "thrift"
	FormatCloudfrontAccess = "tsv/com.amazon.aws.cloudfront/wd_access_log"
	FormatUrbanAirship     = "ndjson/urbanairship.connect/v1"
)

// stagedFormats may be copied onto HDFS before enrichment. Formats missing
// from this list are always read straight from S3.
var stagedFormats = map[string]struct{}{
	FormatCloudfront:       {},
	FormatCljTomcat:        {},
	FormatThrift:           {},
	FormatCloudfrontAccess: {},
	FormatUrbanAirship:     {},
}

// Supported reports whether raw events in this format can be staged on HDFS.
func (c Collectors) Supported() bool {
	_, ok := stagedFormats[c.Format]
	return ok
}

// CloudfrontLog reports whether the raw events are CloudFront access logs.
func (c Collectors) CloudfrontLog() bool {
	return c.Format == FormatCloudfront || c.Format == FormatCloudfrontAccess
}

// UrbanAirship reports whether the raw events are UrbanAirship Connect ndjson.
func (c Collectors) UrbanAirship() bool {
	return c.Format == FormatUrbanAirship
}

// Thrift reports whether the raw events are Thrift-encoded collector payloads.
func (c Collectors) Thrift() bool {
	return c.Format == FormatThrift
}
