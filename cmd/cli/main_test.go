package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_GeneratesCluster(t *testing.T) {
	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{"config.hcl": testutil.ConfigHCL})
	dest := filepath.Join(dir, "cluster.json")
	args := []string{
		"generate", "emr-cluster",
		"-c", filepath.Join(dir, "config.hcl"),
		"-f", dest,
		"-a", testutil.SchemaVersion,
		"--schema-registry", testutil.SchemaRegistry(t),
	}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, out.String())
	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(b), `"schema":"iglu:com.snowplowanalytics.dataflowrunner/ClusterConfig/avro/1-0-0"`)
}

func TestRun_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error is reported as a configuration error, not a panic.
	dir := testutil.WriteFiles(t, map[string]string{"config.hcl": "aws {"})
	args := []string{
		"generate", "emr-cluster",
		"-c", filepath.Join(dir, "config.hcl"),
		"-f", filepath.Join(dir, "cluster.json"),
		"-a", testutil.SchemaVersion,
		"--schema-registry", testutil.SchemaRegistry(t),
	}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err)
	require.True(t, config.IsError(err))
	require.Contains(t, err.Error(), "failed to parse configuration file")
	require.NoFileExists(t, filepath.Join(dir, "cluster.json"))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
