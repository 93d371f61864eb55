package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"didact/internal/domain"
	"didact/internal/ports"
)

// ErrUnsupportedFormat is returned for documents no renderer is registered for
var ErrUnsupportedFormat = errors.New("unsupported document format")

// headingAttributes are the heading attributes kept in the output.
// time carries the step duration read by the outline.
var headingAttributes = html.HeadingAttributeFilter.Extend([]byte("time"))

// Renderer implements ports.DocumentRenderer. Markdown goes through goldmark
// with heading attributes enabled, so "## Step {time=5}" renders as
// <h2 time="5">. Raw HTML in the source is passed through.
type Renderer struct {
	markdown goldmark.Markdown
}

var _ ports.DocumentRenderer = (*Renderer)(nil)

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(&headingRenderer{}, 100)),
		),
	)
	return &Renderer{markdown: md}
}

// Render converts the document to HTML according to its file extension
func (r *Renderer) Render(ctx context.Context, doc *ports.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch format := domain.FormatForPath(doc.Name); format {
	case domain.FormatMarkdown:
		var buf bytes.Buffer
		if err := r.markdown.Convert(doc.Source, &buf); err != nil {
			return "", fmt.Errorf("failed to render %s: %w", doc.Name, err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, doc.Name, format)
	}
}

// headingRenderer renders headings with the extended attribute filter
type headingRenderer struct{}

func (r *headingRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *headingRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		_, _ = w.WriteString("<h")
		_ = w.WriteByte("0123456"[n.Level])
		renderAttributes(w, node)
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}

// renderAttributes writes the kept attributes of node. Unquoted numbers
// such as {time=5} are parsed as float64 and are formatted back here.
func renderAttributes(w util.BufWriter, node ast.Node) {
	for _, attr := range node.Attributes() {
		if !headingAttributes.Contains(attr.Name) && !bytes.HasPrefix(attr.Name, []byte("data-")) {
			continue
		}
		var value []byte
		switch v := attr.Value.(type) {
		case []byte:
			value = v
		case string:
			value = []byte(v)
		case float64:
			value = []byte(strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			value = []byte(strconv.FormatBool(v))
		default:
			continue
		}
		_ = w.WriteByte(' ')
		_, _ = w.Write(attr.Name)
		_, _ = w.WriteString(`="`)
		_, _ = w.Write(util.EscapeHTML(value))
		_ = w.WriteByte('"')
	}
}
