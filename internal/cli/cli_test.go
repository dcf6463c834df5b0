package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karammi/snowplow/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Cluster with long flags",
			args: []string{
				"--log-level=debug", "--log-format=json",
				"generate", "emr-cluster",
				"--config", "config.hcl",
				"--filename", "cluster.json",
				"--avro-schema-version", "1-1-0",
				"--schema-registry", "/schemas",
				"--env-file", ".env",
			},
			expectedConfig: &app.Config{
				Generator:      app.GeneratorCluster,
				ConfigPath:     "config.hcl",
				EnvFile:        ".env",
				Destination:    "cluster.json",
				SchemaVersion:  "1-1-0",
				SchemaRegistry: "/schemas",
				LogFormat:      "json",
				LogLevel:       "debug",
			},
		},
		{
			name: "Playbook with shorthand flags and defaults",
			args: []string{
				"generate", "playbook",
				"-c", "config.hcl",
				"-n", "enrichments",
				"-r", "resolver.json",
				"-d",
				"-x", "elasticsearch, s3distcp",
				"-f", "playbook.json",
				"--schema-version", "1-0-0",
			},
			expectedConfig: &app.Config{
				Generator:      app.GeneratorPlaybook,
				ConfigPath:     "config.hcl",
				Destination:    "playbook.json",
				SchemaVersion:  "1-0-0",
				EnrichmentsDir: "enrichments",
				ResolverPath:   "resolver.json",
				Debug:          true,
				Skip:           []string{"elasticsearch", "s3distcp"},
				LogFormat:      "text",
				LogLevel:       "info",
			},
		},
		{
			name:       "No arguments print usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "generate playbook")
			},
		},
		{
			name:       "Subcommand help triggers clean exit",
			args:       []string{"generate", "playbook", "-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "-resolver")
			},
		},
		{
			name:       "Version",
			args:       []string{"-v"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, Program+" "+Version)
			},
		},
		{name: "Unknown command", args: []string{"run"}, expectErr: true},
		{name: "Missing artifact", args: []string{"generate"}, expectErr: true},
		{name: "Unknown artifact", args: []string{"generate", "dag"}, expectErr: true},
		{name: "Unknown flag", args: []string{"--nope"}, expectErr: true},
		{name: "Invalid log level", args: []string{"--log-level=trace", "generate", "emr-cluster"}, expectErr: true},
		{name: "Invalid log format", args: []string{"--log-format=xml", "generate", "emr-cluster"}, expectErr: true},
		{
			name:      "Playbook requires a resolver",
			args:      []string{"generate", "playbook", "-c", "c.hcl", "-f", "p.json", "--schema-version", "1-0-0"},
			expectErr: true,
		},
		{
			name:      "Cluster requires a schema version",
			args:      []string{"generate", "emr-cluster", "-c", "c.hcl", "-f", "c.json"},
			expectErr: true,
		},
		{
			name:      "Stray positional arguments",
			args:      []string{"generate", "emr-cluster", "-c", "c.hcl", "-f", "c.json", "-a", "1-0-0", "extra"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			var out bytes.Buffer

			// --- Act ---
			cfg, exit, err := Parse(tc.args, &out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, exit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
