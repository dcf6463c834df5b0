package testutil

import "github.com/karammi/snowplow/internal/config"

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Config returns a fresh, valid configuration for a current (AMI 4.x)
// cluster in eu-west-1 reading CloudFront logs, with one Elasticsearch
// target. Callers may mutate it freely.
func Config() *config.Config {
	return &config.Config{
		AWS: config.AWS{
			AccessKeyID:     "AKIAEXAMPLE",
			SecretAccessKey: "secret",
			S3: config.S3{Buckets: config.Buckets{
				Assets: "s3://snowplow-hosted-assets",
				Log:    "s3://logs/emr",
				Raw: config.RawBuckets{
					In:         []string{"s3://in"},
					Processing: Ptr("s3://processing/"),
					Archive:    Ptr("s3://archive/raw/"),
				},
				Enriched: config.OutputBuckets{
					Good:    Ptr("s3://enriched/good/"),
					Bad:     Ptr("s3://enriched/bad/"),
					Errors:  Ptr("s3://enriched/errors/"),
					Archive: Ptr("s3://archive/enriched/"),
				},
				Shredded: config.OutputBuckets{
					Good:    Ptr("s3://shredded/good/"),
					Bad:     Ptr("s3://shredded/bad/"),
					Errors:  Ptr("s3://shredded/errors/"),
					Archive: Ptr("s3://archive/shredded/"),
				},
			}},
			EMR: config.EMR{
				AMIVersion:  "4.5.0",
				Region:      "eu-west-1",
				JobflowRole: "EMR_EC2_DefaultRole",
				ServiceRole: "EMR_DefaultRole",
				Placement:   Ptr("eu-west-1a"),
				EC2KeyName:  "snowplow-key",
				Jobflow: config.Jobflow{
					MasterInstanceType: "m1.medium",
					CoreInstanceCount:  2,
					CoreInstanceType:   "m1.medium",
					TaskInstanceCount:  0,
					TaskInstanceType:   "m1.medium",
					TaskInstanceBid:    0.015,
				},
			},
		},
		Collectors: config.Collectors{Format: "cloudfront"},
		Enrich: config.Enrich{
			JobName: "Snowplow ETL",
			Versions: config.Versions{
				HadoopEnrich:        Ptr("1.8.0"),
				HadoopShred:         Ptr("0.11.0"),
				HadoopElasticsearch: Ptr("0.1.0"),
			},
			OutputCompression: Ptr("NONE"),
		},
		Storage: config.Storage{Targets: []config.Target{
			{
				Name:     "Our Elasticsearch cluster",
				Type:     config.TargetTypeElasticsearch,
				Host:     Ptr("localhost"),
				Port:     Ptr(9200),
				Database: Ptr("snowplow"),
				Table:    Ptr("bad_rows"),
			},
		}},
		Monitoring: config.Monitoring{Tags: map[string]string{"name": "snowplow"}},
	}
}

// ConfigHCL is Config written as a configuration file. Credentials are read
// from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY, falling back to the
// values in Config.
const ConfigHCL = `
aws {
  access_key_id     = env("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
  secret_access_key = env("AWS_SECRET_ACCESS_KEY", "secret")

  s3 {
    buckets {
      assets = "s3://snowplow-hosted-assets"
      log    = "s3://logs/emr"

      raw {
        in         = ["s3://in"]
        processing = "s3://processing/"
        archive    = "s3://archive/raw/"
      }
      enriched {
        good    = "s3://enriched/good/"
        bad     = "s3://enriched/bad/"
        errors  = "s3://enriched/errors/"
        archive = "s3://archive/enriched/"
      }
      shredded {
        good    = "s3://shredded/good/"
        bad     = "s3://shredded/bad/"
        errors  = "s3://shredded/errors/"
        archive = "s3://archive/shredded/"
      }
    }
  }

  emr {
    ami_version  = "4.5.0"
    region       = "eu-west-1"
    jobflow_role = "EMR_EC2_DefaultRole"
    service_role = "EMR_DefaultRole"
    placement    = "eu-west-1a"
    ec2_key_name = "snowplow-key"

    jobflow {
      master_instance_type = "m1.medium"
      core_instance_count  = 2
      core_instance_type   = "m1.medium"
      task_instance_count  = 0
      task_instance_type   = "m1.medium"
      task_instance_bid    = 0.015
    }
  }
}

collectors {
  format = "cloudfront"
}

enrich {
  job_name = "Snowplow ETL"
  versions {
    hadoop_enrich        = "1.8.0"
    hadoop_shred         = "0.11.0"
    hadoop_elasticsearch = "0.1.0"
  }
  continue_on_unexpected_error = false
  output_compression           = "NONE"
}

storage {
  target "Our Elasticsearch cluster" {
    type     = "elasticsearch"
    host     = "localhost"
    port     = 9200
    database = "snowplow"
    table    = "bad_rows"
  }
}

monitoring {
  tags = {
    name = "snowplow"
  }
}
`

// Resolver is a minimal Iglu resolver document.
const Resolver = `{"schema":"iglu:com.snowplowanalytics.iglu/resolver-config/jsonschema/1-0-0","data":{"cacheSize":500,"repositories":[]}}`
