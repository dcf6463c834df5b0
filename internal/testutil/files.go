package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SchemaVersion is the version under which SchemaRegistry serves both
// artifact schemas.
const SchemaVersion = "1-0-0"

// WriteFiles creates files (relative path -> content) under a fresh temporary
// directory and returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create directory for %s", name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to write %s", name)
	}
	return dir
}

// SchemaRegistry lays out a local schema registry serving ClusterConfig and
// PlaybookConfig at SchemaVersion and returns its root.
func SchemaRegistry(t *testing.T) string {
	t.Helper()
	const vendor = "com.snowplowanalytics.dataflowrunner/"
	return WriteFiles(t, map[string]string{
		vendor + "ClusterConfig/avro/" + SchemaVersion:  ClusterConfigSchema,
		vendor + "PlaybookConfig/avro/" + SchemaVersion: PlaybookConfigSchema,
	})
}
