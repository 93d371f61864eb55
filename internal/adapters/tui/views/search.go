package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/adapters/tui/styles"
	"didact/internal/application"
	"didact/internal/application/commands"
	"didact/internal/domain"
)

const searchPageSize = 10

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Copy     key.Binding
	Cancel   key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "prev page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy uri"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel finds registered tutorials by fuzzy name, category or URI
type SearchModel struct {
	ViewState
	registry  *application.TutorialRegistry
	input     textinput.Model
	results   []commands.TutorialMatch
	paginator *Paginator
	query     string
}

type searchResultsMsg struct {
	query   string
	results []commands.TutorialMatch
	err     error
}

// NewSearchModel creates a new search view model
func NewSearchModel(registry *application.TutorialRegistry) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search tutorials..."
	input.Focus()

	return &SearchModel{
		registry:  registry,
		input:     input,
		paginator: NewPaginator(searchPageSize),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.query = ""
	m.results = nil
	m.paginator.Reset()
	m.ClearMessage()
	m.input.Focus()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		// drop results of queries the user has typed past
		if msg.query != m.query {
			return m, nil
		}
		if msg.err != nil {
			m.Fail(msg.err)
		}
		m.results = msg.results
		m.paginator.Reset()
		m.paginator.SetTotal(len(m.results))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, SearchKeys.Up):
			m.paginator.CursorUp()
			return m, nil
		case key.Matches(msg, SearchKeys.Down):
			m.paginator.CursorDown()
			return m, nil
		case key.Matches(msg, SearchKeys.NextPage):
			m.paginator.NextPage()
			return m, nil
		case key.Matches(msg, SearchKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil
		case key.Matches(msg, SearchKeys.Copy):
			if match, ok := m.selected(); ok {
				if err := clipboard.WriteAll(match.SourceURI); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage("Copied "+match.SourceURI, false)
				}
			}
			return m, nil
		case key.Matches(msg, SearchKeys.Open):
			if match, ok := m.selected(); ok {
				node := domain.OutlineNode{
					Kind:      domain.NodeTutorial,
					Category:  match.Category,
					Label:     match.Name,
					SourceURI: match.SourceURI,
				}
				return m, func() tea.Msg { return OpenTutorialMsg{Node: node} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != m.query {
		m.query = query
		if query == "" {
			m.results = nil
			m.paginator.Reset()
			return m, cmd
		}
		return m, tea.Batch(cmd, m.search(query))
	}
	return m, cmd
}

func (m *SearchModel) search(query string) tea.Cmd {
	search := commands.NewSearchTutorialsCommand(m.registry, query)
	return func() tea.Msg {
		results, err := search.Execute(context.Background())
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

func (m *SearchModel) selected() (commands.TutorialMatch, bool) {
	i := m.paginator.Cursor()
	if i >= 0 && i < len(m.results) {
		return m.results[i], true
	}
	return commands.TutorialMatch{}, false
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().
		Title("Search").
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine()

	switch {
	case len(m.results) > 0:
		v.Line(styles.Subtitle.Render(fmt.Sprintf("%d results (page %d/%d)",
			len(m.results), m.paginator.CurrentPage(), m.paginator.TotalPages()))).BlankLine()
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderResult(m.results[i], i == m.paginator.Cursor()))
		}
		if dots := m.paginator.View(); dots != "" {
			v.BlankLine().Line(dots)
		}
	case len(m.query) >= 2:
		v.Muted("No tutorials found")
	default:
		v.Muted("Type at least 2 characters to search")
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Open, SearchKeys.Copy, SearchKeys.Cancel).
		String()
}

func (m *SearchModel) renderResult(match commands.TutorialMatch, selected bool) string {
	name := match.Name
	if selected {
		name = styles.NodeSelected.Render(name)
	}
	return name + " " + RenderMuted("["+match.Category+"]")
}
