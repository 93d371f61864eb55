package filesystem

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"didact/internal/ports"
)

// Fetcher implements ports.DocumentFetcher for local tutorial sources.
// It accepts file:// URIs and plain paths; relative paths resolve against baseDir.
type Fetcher struct {
	baseDir string
}

var _ ports.DocumentFetcher = (*Fetcher)(nil)

// NewFetcher creates a fetcher resolving relative paths against baseDir
func NewFetcher(baseDir string) *Fetcher {
	return &Fetcher{baseDir: expandHome(baseDir)}
}

// Fetch reads the document behind uri
func (f *Fetcher) Fetch(ctx context.Context, uri string) (*ports.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := f.Path(uri)
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tutorial: %w", err)
	}
	return &ports.Document{
		URI:     uri,
		Name:    filepath.Base(path),
		BaseDir: filepath.Dir(path),
		Source:  source,
	}, nil
}

// Path maps a tutorial URI onto the local filesystem
func (f *Fetcher) Path(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", fmt.Errorf("empty tutorial uri")
	}

	path := uri
	if strings.Contains(uri, "://") {
		u, err := url.Parse(uri)
		if err != nil {
			return "", fmt.Errorf("invalid tutorial uri %q: %w", uri, err)
		}
		if u.Scheme != "file" {
			return "", fmt.Errorf("unsupported tutorial uri scheme %q", u.Scheme)
		}
		path = filepath.FromSlash(u.Path)
	}

	path = expandHome(path)
	if !filepath.IsAbs(path) && f.baseDir != "" {
		path = filepath.Join(f.baseDir, path)
	}
	return filepath.Abs(path)
}
