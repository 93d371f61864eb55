package htmlscan

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"didact/internal/domain"
	"didact/internal/ports"
)

// TimeAttribute is the heading attribute holding a step duration in minutes
const TimeAttribute = "time"

// Scanner implements ports.HeadingScanner with the x/net/html tokenizer
type Scanner struct{}

var _ ports.HeadingScanner = (*Scanner)(nil)

// NewScanner creates a scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// FindHeadingsWithTimeAnnotation returns the h1-h6 elements that carry a
// time attribute, in document order. The label is the heading's text
// content with whitespace collapsed; the annotation is returned unparsed.
func (s *Scanner) FindHeadingsWithTimeAnnotation(doc string) ([]domain.HeadingAnnotation, error) {
	z := html.NewTokenizer(strings.NewReader(doc))

	var (
		result  []domain.HeadingAnnotation
		current *domain.HeadingAnnotation
		open    atom.Atom
		text    strings.Builder
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return result, nil
			}
			return result, z.Err()

		case html.StartTagToken:
			tok := z.Token()
			if current != nil || !isHeading(tok.DataAtom) {
				continue
			}
			if value, ok := attr(tok, TimeAttribute); ok {
				current = &domain.HeadingAnnotation{RawAnnotation: value}
				open = tok.DataAtom
				text.Reset()
			}

		case html.TextToken:
			if current != nil {
				text.Write(z.Text())
			}

		case html.EndTagToken:
			if current == nil {
				continue
			}
			if tok := z.Token(); tok.DataAtom == open {
				current.Label = strings.Join(strings.Fields(text.String()), " ")
				result = append(result, *current)
				current = nil
			}
		}
	}
}

// FindLinks returns the href of every anchor accepted by match, in document order
func (s *Scanner) FindLinks(doc string, match func(href string) bool) []string {
	z := html.NewTokenizer(strings.NewReader(doc))
	var links []string
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return links
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tok := z.Token()
		if tok.DataAtom != atom.A {
			continue
		}
		if href, ok := attr(tok, "href"); ok && (match == nil || match(href)) {
			links = append(links, href)
		}
	}
}

func isHeading(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func attr(tok html.Token, name string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
