package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/application"
)

// PromptPurpose tells the app what a prompt answer is for
type PromptPurpose int

const (
	// PromptUserInput answers a user= label of a running link
	PromptUserInput PromptPurpose = iota
	// PromptRunLink reads a didact link to run
	PromptRunLink
)

// PromptAnsweredMsg is sent when the prompt is submitted or cancelled.
// A cancelled prompt carries an empty Value.
type PromptAnsweredMsg struct {
	Purpose   PromptPurpose
	Value     string
	Cancelled bool
}

// PromptModel asks for a single line of input
type PromptModel struct {
	ViewState
	purpose PromptPurpose
	title   string
	form    *InputForm

	// Standalone models quit the program after answering
	Standalone bool
	answer     PromptAnsweredMsg
}

// NewPromptModel creates a prompt with the given title and field label
func NewPromptModel(purpose PromptPurpose, title, label, placeholder string) *PromptModel {
	var check FieldCheck
	if purpose == PromptRunLink {
		check = func(v string) error { return application.ValidateLink("link", v) }
	}
	return &PromptModel{
		purpose: purpose,
		title:   title,
		form:    NewInputForm("submit", NewInputField(label, placeholder, check)),
		answer:  PromptAnsweredMsg{Purpose: purpose, Cancelled: true},
	}
}

// Init initializes the prompt
func (m *PromptModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel), msg.Type == tea.KeyCtrlC:
			return m, m.finish(PromptAnsweredMsg{Purpose: m.purpose, Cancelled: true})

		case key.Matches(msg, m.form.Keys.Submit):
			value := m.form.Value(0)
			if value == "" {
				return m, m.finish(PromptAnsweredMsg{Purpose: m.purpose, Cancelled: true})
			}
			if err := m.form.Validate(); err != nil {
				m.Fail(err)
				return m, nil
			}
			return m, m.finish(PromptAnsweredMsg{Purpose: m.purpose, Value: value})
		}
	}

	return m, m.form.Update(msg)
}

func (m *PromptModel) finish(answer PromptAnsweredMsg) tea.Cmd {
	m.answer = answer
	if m.Standalone {
		return tea.Quit
	}
	return func() tea.Msg { return answer }
}

// Answer returns the last submitted answer
func (m *PromptModel) Answer() PromptAnsweredMsg {
	return m.answer
}

// View renders the prompt
func (m *PromptModel) View() string {
	return NewViewBuilder().
		Title(m.title).
		Line(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(m.form.HelpView()).
		String()
}
