package app_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/karammi/snowplow/internal/app"
	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/hcl"
	"github.com/karammi/snowplow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type artifact struct {
	Schema string          `json:"schema"`
	Data   json.RawMessage `json:"data"`
}

type playbookData struct {
	Region string `json:"region"`
	Steps  []struct {
		Name      string   `json:"name"`
		Arguments []string `json:"arguments"`
	} `json:"steps"`
}

// workspace lays out a configuration, resolver, enrichments and a local
// schema registry, and returns an app.Config pointing at them.
func workspace(t *testing.T, generatorName string) *app.Config {
	t.Helper()
	dir := testutil.WriteFiles(t, map[string]string{
		"config.hcl":                testutil.ConfigHCL,
		"resolver.json":             testutil.Resolver,
		"enrichments/b.json":        `{"name":"b"}`,
		"enrichments/a.json":        `{"name":"a"}`,
		"enrichments/README.md":     "not an enrichment",
		"enrichments/nested/c.json": `{"name":"c"}`,
	})
	return &app.Config{
		Generator:      generatorName,
		ConfigPath:     filepath.Join(dir, "config.hcl"),
		Destination:    filepath.Join(dir, "out.json"),
		SchemaVersion:  testutil.SchemaVersion,
		SchemaRegistry: testutil.SchemaRegistry(t),
		EnrichmentsDir: filepath.Join(dir, "enrichments"),
		ResolverPath:   filepath.Join(dir, "resolver.json"),
		Skip:           []string{"elasticsearch"},
	}
}

func readArtifact(t *testing.T, path string) artifact {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var a artifact
	require.NoError(t, json.Unmarshal(b, &a))
	return a
}

func TestRun_Playbook(t *testing.T) {
	// --- Arrange ---
	cfg := workspace(t, app.GeneratorPlaybook)
	a, logs := app.SetupAppTest(t, cfg, hcl.NewLoader())

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err, logs.String())
	out := readArtifact(t, cfg.Destination)
	assert.Equal(t, "iglu:com.snowplowanalytics.dataflowrunner/PlaybookConfig/avro/1-0-0", out.Schema)

	var data playbookData
	require.NoError(t, json.Unmarshal(out.Data, &data))
	assert.Equal(t, "eu-west-1", data.Region)
	require.Len(t, data.Steps, 6, "elasticsearch is skipped")
	assert.Equal(t, "Enrich raw events", data.Steps[1].Name)

	args := data.Steps[1].Arguments
	encoded := args[len(args)-1]
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), `"data":[{"name":"a"},{"name":"b"}]`, "top-level enrichments in path order")
	assert.Contains(t, logs.String(), "Artifact written.")
}

func TestRun_Cluster(t *testing.T) {
	// --- Arrange ---
	cfg := workspace(t, app.GeneratorCluster)
	cfg.ResolverPath = ""
	cfg.EnrichmentsDir = filepath.Join(t.TempDir(), "ignored")
	a, logs := app.SetupAppTest(t, cfg, hcl.NewLoader())

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err, logs.String())
	out := readArtifact(t, cfg.Destination)
	assert.Equal(t, "iglu:com.snowplowanalytics.dataflowrunner/ClusterConfig/avro/1-0-0", out.Schema)
	assert.Contains(t, string(out.Data), `"amiVersion":"4.5.0"`)
}

func TestRun_Failures(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(cfg *app.Config)
		wantConfigErr bool
		wantMessage   string
	}{
		{
			name:          "missing resolver file",
			mutate:        func(cfg *app.Config) { cfg.ResolverPath = filepath.Join(filepath.Dir(cfg.ResolverPath), "missing.json") },
			wantConfigErr: true,
			wantMessage:   "resolver file",
		},
		{
			name:          "missing enrichments directory",
			mutate:        func(cfg *app.Config) { cfg.EnrichmentsDir += "-missing" },
			wantConfigErr: true,
			wantMessage:   "enrichments directory",
		},
		{
			name:        "unknown schema version",
			mutate:      func(cfg *app.Config) { cfg.SchemaVersion = "9-9-9" },
			wantMessage: "failed to read schema",
		},
		{
			name:          "missing configuration file",
			mutate:        func(cfg *app.Config) { cfg.ConfigPath += ".missing" },
			wantConfigErr: true,
			wantMessage:   "failed to load configuration",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			cfg := workspace(t, app.GeneratorPlaybook)
			tc.mutate(cfg)
			a, _ := app.SetupAppTest(t, cfg, hcl.NewLoader())

			// --- Act ---
			err := a.Run(context.Background())

			// --- Assert ---
			require.Error(t, err)
			assert.Equal(t, tc.wantConfigErr, config.IsError(err))
			assert.Contains(t, err.Error(), tc.wantMessage)
			_, statErr := os.Stat(cfg.Destination)
			assert.True(t, os.IsNotExist(statErr), "no artifact may be written on failure")
		})
	}
}

func TestRun_SchemaRejection(t *testing.T) {
	// --- Arrange ---
	cfg := workspace(t, app.GeneratorCluster)
	registry := testutil.SchemaRegistry(t)
	path := filepath.Join(registry, "com.snowplowanalytics.dataflowrunner", "ClusterConfig", "avro", testutil.SchemaVersion)
	strict := strings.Replace(testutil.ClusterConfigSchema, `{"name": "bid", "type": "string"}`, `{"name": "bid", "type": "double"}`, 1)
	require.NoError(t, os.WriteFile(path, []byte(strict), 0o600))
	cfg.SchemaRegistry = registry
	a, _ := app.SetupAppTest(t, cfg, hcl.NewLoader())

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.True(t, config.IsError(err))
	assert.Contains(t, err.Error(), "config could not be validated against the schema")
	assert.Contains(t, err.Error(), "ec2.instances.task.bid")
}

func TestNewConfig(t *testing.T) {
	valid := app.Config{
		Generator:     app.GeneratorPlaybook,
		ConfigPath:    "c.hcl",
		Destination:   "out.json",
		SchemaVersion: "1-0-0",
		ResolverPath:  "r.json",
	}

	testCases := []struct {
		name        string
		mutate      func(c *app.Config)
		wantMessage string
	}{
		{name: "valid", mutate: func(c *app.Config) {}},
		{name: "unknown generator", mutate: func(c *app.Config) { c.Generator = "other" }, wantMessage: "Generator"},
		{name: "no config", mutate: func(c *app.Config) { c.ConfigPath = "" }, wantMessage: "ConfigPath"},
		{name: "no destination", mutate: func(c *app.Config) { c.Destination = "" }, wantMessage: "Destination"},
		{name: "no schema version", mutate: func(c *app.Config) { c.SchemaVersion = "" }, wantMessage: "SchemaVersion"},
		{name: "playbook without resolver", mutate: func(c *app.Config) { c.ResolverPath = "" }, wantMessage: "ResolverPath"},
		{
			name:   "cluster without resolver",
			mutate: func(c *app.Config) { c.Generator = app.GeneratorCluster; c.ResolverPath = "" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)

			got, err := app.NewConfig(c)

			if tc.wantMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, c, *got)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMessage)
		})
	}
}

func TestNewApp_RegistersCoreGenerators(t *testing.T) {
	a, _ := app.SetupAppTest(t, workspace(t, app.GeneratorCluster), hcl.NewLoader())

	assert.Equal(t, []string{app.GeneratorCluster, app.GeneratorPlaybook}, a.Registry().Names())
}
