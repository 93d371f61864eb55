package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DocumentFormat is the authoring format of a tutorial source
type DocumentFormat int

const (
	FormatUnknown DocumentFormat = iota
	FormatMarkdown
	FormatAsciiDoc
)

func (f DocumentFormat) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatAsciiDoc:
		return "asciidoc"
	default:
		return "unknown"
	}
}

// FormatForPath selects the document format from a file name
func FormatForPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".adoc", ".asciidoc", ".asc":
		return FormatAsciiDoc
	default:
		return FormatUnknown
	}
}

// TextRange is a half-open range of byte offsets within one line
type TextRange struct {
	Start int
	End   int
}

// CompletionCandidate is one suggestion offered to the editor
type CompletionCandidate struct {
	Label              string
	InsertTextTemplate string
	DocumentationText  string
	ReplaceRange       *TextRange
	// RetriggerSuggest asks the editor to reopen the suggestion list after insertion
	RetriggerSuggest bool
}

var placeholderPattern = regexp.MustCompile(`\$\{\d+:([^}]*)\}|\$\d+`)

// ExpandSnippet replaces snippet placeholders with their default text
func ExpandSnippet(template string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		sub := placeholderPattern.FindStringSubmatch(m)
		return sub[1]
	})
}

// Apply returns line after accepting the candidate at cursor.
// Without a replace range the expanded template is inserted at the cursor.
func (c CompletionCandidate) Apply(line string, cursor int) string {
	start, end := cursor, cursor
	if c.ReplaceRange != nil {
		start, end = c.ReplaceRange.Start, c.ReplaceRange.End
	}
	start = clamp(start, 0, len(line))
	end = clamp(end, start, len(line))
	return line[:start] + ExpandSnippet(c.InsertTextTemplate) + line[end:]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
