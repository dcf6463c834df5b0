package schema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/karammi/snowplow/internal/ctxlog"
)

// DefaultRegistry is Iglu Central's schema tree on GitHub.
const DefaultRegistry = "https://raw.githubusercontent.com/snowplow/iglu-central/master/schemas/"

// Fetcher retrieves the text of a schema by its Iglu name
// (vendor/name/format/version). Fetch is attempted once; callers wanting
// retries wrap the Fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// NewFetcher returns an HTTPFetcher for http(s) locations and a DirFetcher
// for anything else.
func NewFetcher(location string) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPFetcher(location, nil)
	}
	return &DirFetcher{Root: location}
}

// HTTPFetcher reads schemas from a registry served over HTTP.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client gets a default one
// with a bounded timeout.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPFetcher{BaseURL: baseURL, Client: client}
}

// Fetch downloads the schema. Any non-2xx response is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	url := f.BaseURL + name
	logger.Debug("Fetching schema.", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create schema request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch schema %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to fetch schema %s: registry answered %s", name, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	logger.Debug("Fetched schema.", "url", url, "bytes", len(body))
	return string(body), nil
}

// DirFetcher reads schemas from a local copy of a registry.
type DirFetcher struct {
	Root string
}

// Fetch reads <Root>/<name>.
func (f *DirFetcher) Fetch(ctx context.Context, name string) (string, error) {
	path := filepath.Join(f.Root, filepath.FromSlash(name))
	ctxlog.FromContext(ctx).Debug("Reading schema from disk.", "path", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return string(b), nil
}
