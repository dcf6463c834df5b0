package app

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/karammi/snowplow/internal/config"
	"github.com/karammi/snowplow/internal/ctxlog"
	"github.com/karammi/snowplow/internal/fsutil"
)

// enrichmentExtension selects enrichment definitions within their directory.
const enrichmentExtension = ".json"

// loadEnrichments reads every enrichment definition directly inside dir, in
// path order. No directory means no enrichments.
func loadEnrichments(ctx context.Context, dir string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	if dir == "" {
		logger.Debug("No enrichments directory given.")
		return nil, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, config.Errorf("enrichments directory %s does not exist", dir)
		}
		return nil, config.Errorf("failed to access enrichments directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, config.Errorf("enrichments path %s is not a directory", dir)
	}

	paths, err := fsutil.FindFilesByExtension(dir, enrichmentExtension, false)
	if err != nil {
		return nil, config.Errorf("failed to list enrichments in %s: %w", dir, err)
	}
	enrichments, err := fsutil.ReadFiles(paths)
	if err != nil {
		return nil, config.Errorf("failed to read enrichment: %w", err)
	}
	logger.Debug("Enrichments loaded.", "dir", dir, "files", paths)
	return enrichments, nil
}

// loadResolver reads the Iglu resolver document.
func loadResolver(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", config.Errorf("a resolver file is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", config.Errorf("resolver file %s does not exist", path)
		}
		return "", config.Errorf("failed to read resolver file %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Resolver loaded.", "path", path, "bytes", len(b))
	return string(b), nil
}
