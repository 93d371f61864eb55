package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/application"
	"didact/internal/application/commands"
	"didact/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys are the y/n bindings of every confirmation
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// UnregisterSuccessMsg indicates the tutorial was removed
type UnregisterSuccessMsg struct {
	Message string
}

// UnregisterErrMsg indicates removal failed
type UnregisterErrMsg struct {
	Err error
}

// UnregisterModel asks before removing a tutorial from the registry
type UnregisterModel struct {
	ViewState
	registry *application.TutorialRegistry
	target   domain.OutlineNode
	keys     ConfirmKeyMap
}

// NewUnregisterModel creates the unregister confirmation
func NewUnregisterModel(registry *application.TutorialRegistry) *UnregisterModel {
	return &UnregisterModel{
		registry: registry,
		keys:     DefaultConfirmKeys,
	}
}

// SetTarget selects the tutorial to remove
func (m *UnregisterModel) SetTarget(node domain.OutlineNode) {
	m.target = node
	m.ClearMessage()
}

// Init initializes the confirmation
func (m *UnregisterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation
func (m *UnregisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case UnregisterErrMsg:
		m.Fail(msg.Err)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, m.keys.Confirm):
			return m, m.unregister()
		}
	}
	return m, nil
}

func (m *UnregisterModel) unregister() tea.Cmd {
	cmd := commands.NewUnregisterTutorialCommand(m.registry, m.target.Label, m.target.Category)
	return func() tea.Msg {
		msg, err := cmd.Execute(context.Background())
		if err != nil {
			return UnregisterErrMsg{Err: err}
		}
		return UnregisterSuccessMsg{Message: msg}
	}
}

// View renders the confirmation
func (m *UnregisterModel) View() string {
	return NewViewBuilder().
		Title("Unregister Tutorial").
		Line(RenderLabelValue("Tutorial", m.target.Label)).
		Line(RenderLabelValue("Category", m.target.Category)).
		Line(RenderLabelValue("Source", RenderMuted(m.target.SourceURI))).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(m.renderConfirmPrompt("Remove this tutorial from the registry?")).
		String()
}

func (m *UnregisterModel) renderConfirmPrompt(question string) string {
	return question + "  " + RenderHelpLine(m.keys.Confirm, m.keys.Cancel)
}
