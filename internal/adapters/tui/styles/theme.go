package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"didact/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#EE0000") // Red Hat red
	Secondary = lipgloss.Color("#10B981") // Green
	Accent    = lipgloss.Color("#60A5FA") // Blue
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	App      = lipgloss.NewStyle().Padding(1, 2)
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1)
	Subtitle = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	// Outline
	NodeSelected = lipgloss.NewStyle().Background(Primary).Foreground(White).Bold(true)
	NodeDuration = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	TreeBranch   = lipgloss.NewStyle().Foreground(Muted)

	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "• "

	// Forms
	InputLabel   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	InputField   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1)
	InputFocused = InputField.BorderForeground(Secondary)
	InputInvalid = InputField.BorderForeground(Error)

	HelpKey       = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HelpDesc      = lipgloss.NewStyle().Foreground(Muted)
	HelpSeparator = lipgloss.NewStyle().Foreground(Muted)

	Success   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	ErrorMsg  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
)

var nodeStyles = map[domain.NodeKind]lipgloss.Style{
	domain.NodeCategory: lipgloss.NewStyle().Bold(true),
	domain.NodeTutorial: lipgloss.NewStyle().Foreground(Accent),
	domain.NodeHeading:  lipgloss.NewStyle(),
}

var statusStyles = map[bool]lipgloss.Style{
	true:  lipgloss.NewStyle().Foreground(Secondary),
	false: lipgloss.NewStyle().Foreground(Warning),
}

// NodeStyle returns the style for an outline node kind
func NodeStyle(kind domain.NodeKind) lipgloss.Style {
	return nodeStyles[kind]
}

// StatusLabel renders a requirement status the way tutorials show it
func StatusLabel(available bool) string {
	label := "unavailable"
	if available {
		label = "available"
	}
	return statusStyles[available].Render(label)
}

// HelpStyles themes the bubbles help line
func HelpStyles() help.Styles {
	s := help.New().Styles
	s.ShortKey = HelpKey
	s.ShortDesc = HelpDesc
	s.ShortSeparator = HelpSeparator
	s.FullKey = HelpKey
	s.FullDesc = HelpDesc
	s.FullSeparator = HelpSeparator
	return s
}
