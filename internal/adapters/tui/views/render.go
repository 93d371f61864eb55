package views

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"didact/internal/adapters/tui/styles"
	"didact/internal/domain"
)

var helpLine = func() help.Model {
	h := help.New()
	h.Styles = styles.HelpStyles()
	return h
}()

// RenderHelpLine renders the enabled bindings on one line
func RenderHelpLine(bindings ...key.Binding) string {
	return helpLine.ShortHelpView(bindings)
}

// RenderMessage renders a message styled as success or error
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderMuted renders secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return styles.InputLabel.Render(label+":") + " " + value
}

// RenderOutlineNode renders one outline row: indentation, expansion marker,
// label and duration estimate
func RenderOutlineNode(node domain.OutlineNode, depth int, expanded, selected bool) string {
	marker := styles.TreeCollapsed
	switch {
	case node.IsLeaf():
		marker = styles.TreeLeaf
	case expanded:
		marker = styles.TreeExpanded
	}

	item := node.TreeItem()
	label := styles.NodeStyle(node.Kind).Render(item.Label)
	if selected {
		label = styles.NodeSelected.Render(item.Label)
	}
	if item.Description != "" {
		label += " " + styles.NodeDuration.Render(item.Description)
	}
	return strings.Repeat("  ", depth) + styles.TreeBranch.Render(marker) + label
}

// RenderRequirements renders requirement statuses sorted by name
func RenderRequirements(statuses map[string]bool) []string {
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+name+": "+styles.StatusLabel(statuses[name]))
	}
	return lines
}

// ViewBuilder assembles a view line by line inside the app frame
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds the view title
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.Line(styles.Title.Render(title))
}

// Subtitle adds a subtitle followed by a blank line
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.Line(styles.Subtitle.Render(subtitle)).BlankLine()
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteByte('\n')
	return v
}

// Lines adds several lines
func (v *ViewBuilder) Lines(lines ...string) *ViewBuilder {
	for _, l := range lines {
		v.Line(l)
	}
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteByte('\n')
	return v
}

// Muted adds a line of secondary text
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(RenderMuted(text))
}

// Message adds a flash message and a blank line; nothing when empty
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	return v.Line(RenderMessage(message, isError)).BlankLine()
}

// Help adds the key help line
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// String returns the built view wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
