package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/adapters/tui/views"
	"didact/internal/application"
	"didact/internal/domain"
	"didact/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewRegister
	ViewUnregister
	ViewPrompt
	ViewHelp
)

// PathResolver maps a tutorial source URI to a local file
type PathResolver interface {
	Path(uri string) (string, error)
}

// Options are the collaborators the app drives
type Options struct {
	Outline  *application.OutlineProvider
	Registry *application.TutorialRegistry
	Links    *application.LinkHandler
	Paths    PathResolver
	Editor   ports.FileOpener // nil disables opening tutorials
}

// App is the main TUI application model
type App struct {
	opts Options

	state      ViewState
	browser    *views.BrowserModel
	search     *views.SearchModel
	register   *views.RegisterModel
	unregister *views.UnregisterModel
	help       *views.HelpModel
	prompt     *views.PromptModel

	// pendingReply answers the link currently waiting on user input
	pendingReply chan<- string
	// returnTo is the view shown again after a prompt
	returnTo ViewState

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(opts Options) *App {
	return &App{
		opts:       opts,
		state:      ViewBrowser,
		browser:    views.NewBrowserModel(opts.Outline),
		search:     views.NewSearchModel(opts.Registry),
		register:   views.NewRegisterModel(opts.Registry),
		unregister: views.NewUnregisterModel(opts.Registry),
		help:       views.NewHelpModel(),
	}
}

// Run starts the app full screen and blocks until it quits.
// The bridge is attached for the lifetime of the program.
func Run(ctx context.Context, app *App, bridge *Bridge) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p)
	defer bridge.Attach(nil)

	if app.opts.Outline != nil {
		app.opts.Outline.OnDidChange(func() {
			bridge.Send(views.OutlineChangedMsg{})
		})
	}

	_, err := p.Run()
	return err
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

type linkRanMsg struct {
	outcome *application.Outcome
	err     error
}

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.register.SetSize(msg.Width, msg.Height)
		a.unregister.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// Messages the browser always sees, whatever view is active
	case views.NotifyMsg, views.StatusMsg, views.OutlineChangedMsg:
		_, cmd := a.browser.Update(msg)
		return a, cmd

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToRegisterMsg:
		a.state = ViewRegister
		a.register.Prepare(msg.Category)
		return a, a.register.Init()

	case views.SwitchToUnregisterMsg:
		a.state = ViewUnregister
		a.unregister.SetTarget(msg.Node)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.SwitchToRunLinkMsg:
		return a, a.showPrompt(views.NewPromptModel(views.PromptRunLink,
			"Run Link", "Link", "didact://?commandId=..."))

	case PromptRequestMsg:
		a.pendingReply = msg.Reply
		return a, a.showPrompt(views.NewPromptModel(views.PromptUserInput,
			"Didact needs input", msg.Label, ""))

	case views.PromptAnsweredMsg:
		a.state = a.returnTo
		switch msg.Purpose {
		case views.PromptUserInput:
			if a.pendingReply != nil {
				a.pendingReply <- msg.Value
				a.pendingReply = nil
			}
		case views.PromptRunLink:
			if !msg.Cancelled {
				return a, a.runLink(msg.Value)
			}
		}
		return a, nil

	case views.RegisterSuccessMsg:
		a.state = ViewBrowser
		_, cmd := a.browser.Update(views.NotifyMsg{Text: msg.Message})
		return a, cmd

	case views.UnregisterSuccessMsg:
		a.state = ViewBrowser
		_, cmd := a.browser.Update(views.NotifyMsg{Text: msg.Message})
		return a, cmd

	case views.OpenTutorialMsg:
		a.state = ViewBrowser
		return a, a.openTutorial(msg.Node)

	case views.ValidateTutorialMsg:
		return a, a.validate(msg.Node)

	case linkRanMsg:
		// the dispatcher already notified success or failure
		if msg.err != nil {
			_, cmd := a.browser.Update(views.NotifyMsg{Text: msg.err.Error(), IsErr: true})
			return a, cmd
		}
		return a, nil

	case editorFinishedMsg:
		if msg.err != nil {
			_, cmd := a.browser.Update(views.NotifyMsg{Text: msg.err.Error(), IsErr: true})
			return a, cmd
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewRegister:
		_, cmd = a.register.Update(msg)
	case ViewUnregister:
		_, cmd = a.unregister.Update(msg)
	case ViewPrompt:
		_, cmd = a.prompt.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}
	return a, cmd
}

func (a *App) showPrompt(p *views.PromptModel) tea.Cmd {
	if a.state != ViewPrompt {
		a.returnTo = a.state
	}
	a.prompt = p
	a.prompt.SetSize(a.width, a.height)
	a.state = ViewPrompt
	return a.prompt.Init()
}

func (a *App) runLink(link string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := a.opts.Links.Handle(context.Background(), link)
		return linkRanMsg{outcome: outcome, err: err}
	}
}

func (a *App) validate(node domain.OutlineNode) tea.Cmd {
	inv := &domain.LinkInvocation{
		CommandID: domain.CommandValidateAllRequirements,
		Text:      []string{node.SourceURI},
	}
	return func() tea.Msg {
		return linkRanMsg{outcome: a.opts.Links.Run(context.Background(), inv)}
	}
}

func (a *App) openTutorial(node domain.OutlineNode) tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return editorFinishedMsg{err: err} }
	}
	if a.opts.Editor == nil {
		return fail(fmt.Errorf("no editor configured"))
	}
	path, err := a.opts.Paths.Path(node.SourceURI)
	if err != nil {
		return fail(err)
	}
	cmd, err := a.opts.Editor.Command(context.Background(), path)
	if err != nil {
		return fail(err)
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewRegister:
		return a.register.View()
	case ViewUnregister:
		return a.unregister.View()
	case ViewPrompt:
		return a.prompt.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
