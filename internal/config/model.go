package config

import (
	"strconv"
	"strings"
)

// Config is the unified, format-agnostic representation of the runner
// configuration. It is treated as immutable once loaded.
type Config struct {
	AWS        AWS        `json:"aws"`
	Collectors Collectors `json:"collectors"`
	Enrich     Enrich     `json:"enrich"`
	Storage    Storage    `json:"storage"`
	Monitoring Monitoring `json:"monitoring"`
}

// AWS groups credentials, storage buckets and EMR cluster settings.
type AWS struct {
	AccessKeyID     string `json:"access_key_id" validate:"required"`
	SecretAccessKey string `json:"secret_access_key" validate:"required"`
	S3              S3     `json:"s3"`
	EMR             EMR    `json:"emr"`
}

// S3 holds the bucket layout.
type S3 struct {
	Buckets Buckets `json:"buckets"`
}

// Buckets is the full set of storage locations used by the pipeline.
type Buckets struct {
	Assets   string        `json:"assets" validate:"required"`
	Log      string        `json:"log" validate:"required"`
	Raw      RawBuckets    `json:"raw"`
	Enriched OutputBuckets `json:"enriched"`
	Shredded OutputBuckets `json:"shredded"`
}

// RawBuckets locates collector output.
type RawBuckets struct {
	In         []string `json:"in"`
	Processing *string  `json:"processing"`
	Archive    *string  `json:"archive"`
}

// OutputBuckets locates the output of a transform stage.
type OutputBuckets struct {
	Good    *string `json:"good"`
	Bad     *string `json:"bad"`
	Errors  *string `json:"errors"`
	Archive *string `json:"archive"`
}

// EMR describes the cluster to launch.
type EMR struct {
	AMIVersion  string            `json:"ami_version" validate:"required"`
	Region      string            `json:"region" validate:"required"`
	JobflowRole string            `json:"jobflow_role" validate:"required"`
	ServiceRole string            `json:"service_role" validate:"required"`
	Placement   *string           `json:"placement"`
	EC2SubnetID *string           `json:"ec2_subnet_id"`
	EC2KeyName  string            `json:"ec2_key_name" validate:"required"`
	Bootstrap   []BootstrapAction `json:"bootstrap" validate:"dive"`
	Software    Software          `json:"software"`
	Jobflow     Jobflow           `json:"jobflow"`
}

// Legacy reports whether the AMI version belongs to the 1.x-3.x family,
// which needs the old jar locations and bootstrap mechanics.
func (e EMR) Legacy() bool {
	major, _, _ := strings.Cut(e.AMIVersion, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 3
}

// BootstrapAction is a user-supplied script run on every node at start-up.
type BootstrapAction struct {
	Name string   `json:"name" validate:"required"`
	Path string   `json:"path" validate:"required"`
	Args []string `json:"args"`
}

// Software lists optional add-ons installed on the cluster.
type Software struct {
	HBase   *string `json:"hbase"`
	Lingual *string `json:"lingual"`
}

// Jobflow sizes the cluster's instance groups.
type Jobflow struct {
	MasterInstanceType string  `json:"master_instance_type" validate:"required"`
	CoreInstanceCount  int     `json:"core_instance_count" validate:"gte=0"`
	CoreInstanceType   string  `json:"core_instance_type" validate:"required"`
	TaskInstanceCount  int     `json:"task_instance_count" validate:"gte=0"`
	TaskInstanceType   string  `json:"task_instance_type" validate:"required_with=TaskInstanceCount"`
	TaskInstanceBid    float64 `json:"task_instance_bid" validate:"gte=0"`
}

// Collectors describes the raw input.
type Collectors struct {
	Format string `json:"format" validate:"required"`
}

// Enrich holds settings shared by the enrich and shred jobs.
type Enrich struct {
	JobName                   string   `json:"job_name" validate:"required"`
	Versions                  Versions `json:"versions"`
	ContinueOnUnexpectedError bool     `json:"continue_on_unexpected_error"`
	OutputCompression         *string  `json:"output_compression" validate:"omitempty,oneof=NONE GZIP LZO SNAPPY"`
}

// Versions pins the job artifacts. Each is only required by the stage that
// runs it.
type Versions struct {
	HadoopEnrich        *string `json:"hadoop_enrich"`
	HadoopShred         *string `json:"hadoop_shred"`
	HadoopElasticsearch *string `json:"hadoop_elasticsearch"`
}

// Storage lists the sinks fed by the pipeline.
type Storage struct {
	Targets []Target `json:"targets" validate:"dive"`
}

// TargetTypeElasticsearch marks the targets loaded by the indexing stage.
const TargetTypeElasticsearch = "elasticsearch"

// Target is a single storage sink.
type Target struct {
	Name           string   `json:"name" validate:"required"`
	Type           string   `json:"type" validate:"required"`
	Host           *string  `json:"host"`
	Port           *int     `json:"port"`
	Database       *string  `json:"database"`
	Table          *string  `json:"table"`
	Sources        []string `json:"sources"`
	ESNodesWANOnly bool     `json:"es_nodes_wan_only"`
}

// Monitoring carries cluster tags.
type Monitoring struct {
	Tags map[string]string `json:"tags"`
}
