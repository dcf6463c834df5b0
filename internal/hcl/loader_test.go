package hcl

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnv hides the process environment from env().
func noEnv(string) (string, bool) { return "", false }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := testutil.WriteFiles(t, map[string]string{"config.hcl": content})
	return filepath.Join(dir, "config.hcl")
}

func TestLoad_MatchesModel(t *testing.T) {
	// --- Arrange ---
	l := &Loader{LookupEnv: noEnv}
	path := writeConfig(t, testutil.ConfigHCL)

	// --- Act ---
	cfg, err := l.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	if diff := cmp.Diff(testutil.Config(), cfg); diff != "" {
		t.Errorf("loaded configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Stdin(t *testing.T) {
	l := &Loader{LookupEnv: noEnv, Stdin: strings.NewReader(testutil.ConfigHCL)}

	cfg, err := l.Load(context.Background(), StdinPath)

	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.AWS.EMR.Region)
}

func TestLoad_EnvFunction(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		envFile string
		wantKey string
	}{
		{name: "fallback when unset", wantKey: "AKIAEXAMPLE"},
		{name: "process environment", env: map[string]string{"AWS_ACCESS_KEY_ID": "FROM_ENV"}, wantKey: "FROM_ENV"},
		{name: "dotenv file", envFile: "AWS_ACCESS_KEY_ID=FROM_FILE\n", wantKey: "FROM_FILE"},
		{
			name:    "process environment wins over dotenv file",
			env:     map[string]string{"AWS_ACCESS_KEY_ID": "FROM_ENV"},
			envFile: "AWS_ACCESS_KEY_ID=FROM_FILE\n",
			wantKey: "FROM_ENV",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			dir := testutil.WriteFiles(t, map[string]string{
				"config.hcl": testutil.ConfigHCL,
				".env":       tc.envFile,
			})
			l := &Loader{
				LookupEnv: func(name string) (string, bool) {
					v, ok := tc.env[name]
					return v, ok
				},
			}
			if tc.envFile != "" {
				l.EnvFile = filepath.Join(dir, ".env")
			}

			// --- Act ---
			cfg, err := l.Load(context.Background(), filepath.Join(dir, "config.hcl"))

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, cfg.AWS.AccessKeyID)
		})
	}
}

func TestLoad_StdlibFunctions(t *testing.T) {
	hcl := strings.Replace(testutil.ConfigHCL,
		`job_name = "Snowplow ETL"`,
		`job_name = format("%s %s", upper("snowplow"), join("-", ["etl", lower("NIGHTLY")]))`, 1)
	l := &Loader{LookupEnv: noEnv}

	cfg, err := l.Load(context.Background(), writeConfig(t, hcl))

	require.NoError(t, err)
	assert.Equal(t, "SNOWPLOW etl-nightly", cfg.Enrich.JobName)
}

func TestLoad_OptionalBlocks(t *testing.T) {
	// --- Arrange ---
	hcl := `
aws {
  access_key_id     = "a"
  secret_access_key = "b"
  s3 {
    buckets {
      assets = "s3://assets"
      log    = "s3://log"
    }
  }
  emr {
    ami_version  = "4.5.0"
    region       = "us-east-1"
    jobflow_role = "j"
    service_role = "s"
    ec2_key_name = "k"

    bootstrap_action "custom" {
      path = "s3://me/setup.sh"
      args = ["--x"]
    }

    software {
      hbase = "0.92.0"
    }

    jobflow {
      master_instance_type = "m1.medium"
      core_instance_type   = "m1.medium"
    }
  }
}

collectors {
  format = "thrift"
}

enrich {
  job_name = "job"
}

storage {
  target "es" {
    type    = "elasticsearch"
    sources = []
  }
}
`
	l := &Loader{LookupEnv: noEnv}

	// --- Act ---
	cfg, err := l.Load(context.Background(), writeConfig(t, hcl))

	// --- Assert ---
	require.NoError(t, err)
	assert.Nil(t, cfg.AWS.S3.Buckets.Raw.Processing)
	assert.Nil(t, cfg.AWS.S3.Buckets.Enriched.Good)
	assert.Nil(t, cfg.Enrich.Versions.HadoopEnrich)
	assert.Nil(t, cfg.Enrich.OutputCompression)
	assert.Nil(t, cfg.AWS.EMR.Placement)
	assert.Equal(t, []config.BootstrapAction{{Name: "custom", Path: "s3://me/setup.sh", Args: []string{"--x"}}}, cfg.AWS.EMR.Bootstrap)
	require.NotNil(t, cfg.AWS.EMR.Software.HBase)
	assert.Equal(t, "0.92.0", *cfg.AWS.EMR.Software.HBase)
	require.Len(t, cfg.Storage.Targets, 1)
	assert.NotNil(t, cfg.Storage.Targets[0].Sources, "an explicit empty list must stay distinguishable from an absent one")
	assert.Empty(t, cfg.Storage.Targets[0].Sources)
	assert.Nil(t, cfg.Monitoring.Tags)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		path        string
		envFile     string
		wantMessage string
	}{
		{
			name:        "syntax error",
			content:     "aws {",
			wantMessage: "failed to parse configuration file",
		},
		{
			name:        "missing required block",
			content:     `collectors { format = "cloudfront" }`,
			wantMessage: "failed to decode configuration file",
		},
		{
			name:        "unknown attribute",
			content:     strings.Replace(testutil.ConfigHCL, `format = "cloudfront"`, `format = "cloudfront"`+"\n  colour = \"blue\"", 1),
			wantMessage: "colour",
		},
		{
			name:        "validation names fields",
			content:     strings.Replace(testutil.ConfigHCL, `region       = "eu-west-1"`, `region       = ""`, 1),
			wantMessage: "aws.emr.region: is required",
		},
		{
			name:        "bad compression",
			content:     strings.Replace(testutil.ConfigHCL, `output_compression           = "NONE"`, `output_compression           = "ZIP"`, 1),
			wantMessage: "enrich.output_compression",
		},
		{
			name:        "missing file",
			path:        "/does/not/exist.hcl",
			wantMessage: "failed to parse configuration file",
		},
		{
			name:        "missing env file",
			content:     testutil.ConfigHCL,
			envFile:     "/does/not/exist.env",
			wantMessage: "failed to read env file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			path := tc.path
			if path == "" {
				path = writeConfig(t, tc.content)
			}
			l := &Loader{LookupEnv: noEnv, EnvFile: tc.envFile}

			// --- Act ---
			_, err := l.Load(context.Background(), path)

			// --- Assert ---
			require.Error(t, err)
			assert.True(t, config.IsError(err), "expected a configuration error, got %T", err)
			assert.Contains(t, err.Error(), tc.wantMessage)
		})
	}
}
