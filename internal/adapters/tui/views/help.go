package views

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/adapters/tui/styles"
)

var helpClose = key.NewBinding(
	key.WithKeys("esc", "q", "?"),
	key.WithHelp("esc/q/?", "close"),
)

// ShortHelp implements help.KeyMap
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Right, k.Open, k.Validate, k.RunLink, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap; each group renders as a column
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.Open, k.Copy, k.Validate, k.RunLink},
		{k.New, k.Unregister, k.Search, k.Refresh},
		{k.Help, k.Quit},
	}
}

var linkSyntax = []string{
	"didact://?commandId=<id>&text=<arg>$$<arg>",
	"path: projectFilePath | srcFilePath | extFilePath",
	"args: user, number, json (with text, in that order)",
	"messages: completion, error",
}

// HelpModel lists every browser binding and the link syntax
type HelpModel struct {
	ViewState
	keys help.Model
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	h := help.New()
	h.Styles = styles.HelpStyles()
	h.ShowAll = true
	return &HelpModel{keys: h}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.keys.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, helpClose) {
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder().
		Title("Didact Help").
		Subtitle("Browse tutorials and run didact:// links").
		Line(m.keys.View(BrowserKeys)).
		BlankLine().
		Line(styles.InputLabel.Render("Link format"))
	for _, l := range linkSyntax {
		v.Muted("  " + l)
	}
	return v.BlankLine().Help(helpClose).String()
}
