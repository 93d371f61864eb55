package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/application"
	"didact/internal/application/commands"
)

const (
	registerFieldName = iota
	registerFieldURI
	registerFieldCategory
)

// RegisterModel is the form for registering a tutorial
type RegisterModel struct {
	ViewState
	registry *application.TutorialRegistry
	form     *InputForm
}

// RegisterSuccessMsg indicates the tutorial was registered
type RegisterSuccessMsg struct {
	Message string
}

// RegisterErrMsg indicates registration failed
type RegisterErrMsg struct {
	Err error
}

// SwitchToRegisterMsg opens the register form, prefilling the category
type SwitchToRegisterMsg struct {
	Category string
}

// NewRegisterModel creates the register form
func NewRegisterModel(registry *application.TutorialRegistry) *RegisterModel {
	return &RegisterModel{
		registry: registry,
		form: NewInputForm("register",
			NewInputField("Name", "My Tutorial", required("name")),
			NewInputField("Source URI", "file:///path/to/tutorial.didact.md", required("sourceUri")),
			NewInputField("Category", commands.DefaultCategory, required("category")),
		),
	}
}

// Prepare resets the form for a new registration in category
func (m *RegisterModel) Prepare(category string) {
	m.ClearMessage()
	m.form.Reset()
	m.form.SetValue(registerFieldCategory, category)
}

// Init initializes the register view
func (m *RegisterModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the register view
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case RegisterErrMsg:
		m.Fail(msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			if err := m.form.Validate(); err != nil {
				m.Fail(err)
				return m, nil
			}
			return m, m.register()
		}
	}

	return m, m.form.Update(msg)
}

func required(fieldName string) FieldCheck {
	return func(v string) error { return application.ValidateRequired(fieldName, v) }
}

func (m *RegisterModel) register() tea.Cmd {
	cmd := commands.NewRegisterTutorialCommand(m.registry,
		m.form.Value(registerFieldName),
		m.form.Value(registerFieldURI),
		m.form.Value(registerFieldCategory),
	)
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return RegisterErrMsg{Err: err}
		}
		return RegisterSuccessMsg{Message: result.Message}
	}
}

// View renders the register view
func (m *RegisterModel) View() string {
	return NewViewBuilder().
		Title("Register Tutorial").
		Subtitle("The tutorial appears in the outline under its category.").
		Line(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(m.form.HelpView()).
		String()
}
