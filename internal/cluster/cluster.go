package cluster

import (
	"context"
	"sort"
	"strconv"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/generator"
)

// SchemaName is the Iglu schema name of a cluster descriptor.
const SchemaName = "ClusterConfig"

// Descriptor is the datum validated against the ClusterConfig schema.
type Descriptor struct {
	Name                   string                `json:"name"`
	LogURI                 string                `json:"logUri"`
	Region                 string                `json:"region"`
	Credentials            generator.Credentials `json:"credentials"`
	Roles                  Roles                 `json:"roles"`
	EC2                    EC2                   `json:"ec2"`
	Tags                   []Tag                 `json:"tags"`
	BootstrapActionConfigs []BootstrapAction     `json:"bootstrapActionConfigs"`
	Configurations         []Configuration       `json:"configurations"`
}

// Roles are the IAM roles of the cluster.
type Roles struct {
	Jobflow string `json:"jobflow"`
	Service string `json:"service"`
}

// EC2 describes the cluster hardware.
type EC2 struct {
	AMIVersion string    `json:"amiVersion"`
	KeyName    string    `json:"keyName"`
	Location   Location  `json:"location"`
	Instances  Instances `json:"instances"`
}

// Location places the cluster in either a VPC subnet or an EC2-Classic
// availability zone. Exactly one field is set.
type Location struct {
	Classic *Classic `json:"classic,omitempty"`
	VPC     *VPC     `json:"vpc,omitempty"`
}

// Classic is an EC2-Classic placement.
type Classic struct {
	AvailabilityZone string `json:"availabilityZone"`
}

// VPC is a VPC subnet placement.
type VPC struct {
	SubnetID string `json:"subnetId"`
}

// Instances sizes the three instance groups.
type Instances struct {
	Master Master `json:"master"`
	Core   Core   `json:"core"`
	Task   Task   `json:"task"`
}

// Master is the master node.
type Master struct {
	Type string `json:"type"`
}

// Core is the core instance group.
type Core struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Task is the spot-priced task instance group.
type Task struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Bid   string `json:"bid"`
}

// Tag is an EC2 tag.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Configuration overrides a Hadoop configuration file on current clusters.
type Configuration struct {
	Classification string            `json:"classification"`
	Properties     map[string]string `json:"properties"`
}

// Compiler implements generator.Generator for cluster descriptors.
type Compiler struct{}

// New returns a cluster descriptor Compiler.
func New() *Compiler {
	return &Compiler{}
}

// SchemaName implements generator.Generator.
func (c *Compiler) SchemaName(version string) string {
	return generator.SchemaName(SchemaName, generator.FormatAvro, version)
}

// BuildDatum implements generator.Generator. Toggles, resolver and
// enrichments do not affect the cluster.
func (c *Compiler) BuildDatum(ctx context.Context, cfg *config.Config, _ generator.Options) (any, error) {
	return Build(ctx, cfg)
}

// Build derives the cluster descriptor from cfg.
func Build(ctx context.Context, cfg *config.Config) (Descriptor, error) {
	emr := cfg.AWS.EMR
	legacy := emr.Legacy()
	ctxlog.FromContext(ctx).Debug("Compiling cluster descriptor.", "ami_version", emr.AMIVersion, "legacy", legacy)

	if cfg.Enrich.Versions.HadoopEnrich == nil {
		return Descriptor{}, config.Errorf("missing required configuration field %q", "enrich.versions.hadoop_enrich")
	}

	return Descriptor{
		Name:        cfg.Enrich.JobName,
		LogURI:      cfg.AWS.S3.Buckets.Log,
		Region:      emr.Region,
		Credentials: generator.CredentialsFrom(cfg),
		Roles: Roles{
			Jobflow: emr.JobflowRole,
			Service: emr.ServiceRole,
		},
		EC2: EC2{
			AMIVersion: emr.AMIVersion,
			KeyName:    emr.EC2KeyName,
			Location:   location(emr.EC2SubnetID, emr.Placement),
			Instances: Instances{
				Master: Master{Type: emr.Jobflow.MasterInstanceType},
				Core: Core{
					Type:  emr.Jobflow.CoreInstanceType,
					Count: emr.Jobflow.CoreInstanceCount,
				},
				Task: Task{
					Type:  emr.Jobflow.TaskInstanceType,
					Count: emr.Jobflow.TaskInstanceCount,
					Bid:   strconv.FormatFloat(emr.Jobflow.TaskInstanceBid, 'f', -1, 64),
				},
			},
		},
		Tags:                   tags(cfg.Monitoring.Tags),
		BootstrapActionConfigs: bootstrapActions(cfg, legacy),
		Configurations:         configurations(legacy),
	}, nil
}

func location(subnet, placement *string) Location {
	if subnet != nil && *subnet != "" {
		return Location{VPC: &VPC{SubnetID: *subnet}}
	}
	var zone string
	if placement != nil {
		zone = *placement
	}
	return Location{Classic: &Classic{AvailabilityZone: zone}}
}

// tags flattens the tag map, ordered by key.
func tags(m map[string]string) []Tag {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, Tag{Key: k, Value: m[k]})
	}
	return out
}

// configurations replaces the configure-hadoop bootstrap actions on clusters
// that no longer support them.
func configurations(legacy bool) []Configuration {
	if legacy {
		return []Configuration{}
	}
	return []Configuration{
		{
			Classification: "core-site",
			Properties:     map[string]string{"io.file.buffer.size": "65536"},
		},
		{
			Classification: "mapred-site",
			Properties:     map[string]string{"mapreduce.user.classpath.first": "true"},
		},
	}
}
