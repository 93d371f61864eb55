package ports

import (
	"context"

	"didact/internal/domain"
)

// Document is a fetched tutorial source
type Document struct {
	URI     string
	Name    string // file name, used to pick the renderer
	BaseDir string // directory relative links resolve against
	Source  []byte
}

// DocumentFetcher loads a tutorial source by URI
type DocumentFetcher interface {
	Fetch(ctx context.Context, uri string) (*Document, error)
}

// DocumentRenderer renders Markdown or AsciiDoc source to HTML
type DocumentRenderer interface {
	Render(ctx context.Context, doc *Document) (string, error)
}

// HeadingScanner finds headings carrying a time annotation in rendered HTML
type HeadingScanner interface {
	FindHeadingsWithTimeAnnotation(html string) ([]domain.HeadingAnnotation, error)
}
