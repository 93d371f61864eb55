package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

// ShortHelp implements help.KeyMap
func (k InputFormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k InputFormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Cancel}}
}

func newInputFormKeys(submitLabel string, multiField bool) InputFormKeyMap {
	keys := InputFormKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", submitLabel)),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
	keys.Next.SetEnabled(multiField)
	keys.Prev.SetEnabled(multiField)
	return keys
}

// FieldCheck validates a field value before the form is submitted
type FieldCheck func(value string) error

// InputField is a labelled text input with an optional check
type InputField struct {
	Label string
	Input textinput.Model
	Check FieldCheck
}

// NewInputField creates a field; check may be nil
func NewInputField(label, placeholder string, check FieldCheck) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 0
	return InputField{Label: label, Input: input, Check: check}
}

// InputForm is a column of fields with focus cycling and submit-time checks
type InputForm struct {
	Fields  []InputField
	Focused int
	Keys    InputFormKeyMap
	help    help.Model
	invalid int // field that failed the last Validate, -1 when none
}

// NewInputForm creates a form and focuses its first field.
// submitLabel names the enter action in the help line.
func NewInputForm(submitLabel string, fields ...InputField) *InputForm {
	h := help.New()
	h.Styles = styles.HelpStyles()

	form := &InputForm{
		Fields:  fields,
		Keys:    newInputFormKeys(submitLabel, len(fields) > 1),
		help:    h,
		invalid: -1,
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus on tab and shift+tab and feeds anything else to the
// focused field
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.Keys.Next):
			f.focus(f.Focused + 1)
			return nil
		case key.Matches(msg, f.Keys.Prev):
			f.focus(f.Focused - 1)
			return nil
		}
	}
	if len(f.Fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.Focused].Input, cmd = f.Fields[f.Focused].Input.Update(msg)
	return cmd
}

func (f *InputForm) focus(index int) {
	if len(f.Fields) == 0 {
		return
	}
	f.Fields[f.Focused].Input.Blur()
	f.Focused = (index + len(f.Fields)) % len(f.Fields)
	f.Fields[f.Focused].Input.Focus()
}

// Value returns the trimmed value of a field
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetValue sets the value of a field
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
}

// Validate runs every field check in order. The first failing field gets
// the focus and its error is returned.
func (f *InputForm) Validate() error {
	f.invalid = -1
	for i, field := range f.Fields {
		if field.Check == nil {
			continue
		}
		if err := field.Check(f.Value(i)); err != nil {
			f.invalid = i
			f.focus(i)
			return err
		}
	}
	return nil
}

// Reset clears every field and focuses the first one
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
		f.Fields[i].Input.Blur()
	}
	f.Focused = 0
	f.invalid = -1
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
}

// View renders every field separated by blank lines
func (f *InputForm) View() string {
	parts := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		box := styles.InputField
		switch i {
		case f.invalid:
			box = styles.InputInvalid
		case f.Focused:
			box = styles.InputFocused
		}
		parts[i] = styles.InputLabel.Render(field.Label) + "\n" + box.Render(field.Input.View())
	}
	return strings.Join(parts, "\n\n")
}

// HelpView renders the key help of the form
func (f *InputForm) HelpView() string {
	return f.help.View(f.Keys)
}
