package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/adapters/tui/styles"
	"didact/internal/domain"
)

// OutlineSource supplies the outline lazily, one level at a time.
// A nil parent asks for the root categories.
type OutlineSource interface {
	Children(ctx context.Context, parent *domain.OutlineNode) ([]domain.OutlineNode, error)
}

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Enter      key.Binding
	Open       key.Binding
	Copy       key.Binding
	New        key.Binding
	Validate   key.Binding
	RunLink    key.Binding
	Unregister key.Binding
	Search     key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy uri"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "register"),
	),
	Validate: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "check requirements"),
	),
	RunLink: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "run link"),
	),
	Unregister: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "unregister"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// treeNode is the browser's view of one outline node plus its expansion state
type treeNode struct {
	node     domain.OutlineNode
	parent   *treeNode
	children []*treeNode
	depth    int
	expanded bool
	loaded   bool
}

func (n *treeNode) flatten(out []*treeNode) []*treeNode {
	out = append(out, n)
	if n.expanded {
		for _, c := range n.children {
			out = c.flatten(out)
		}
	}
	return out
}

// BrowserModel is the model for the outline browser view
type BrowserModel struct {
	ViewState
	source    OutlineSource
	roots     []*treeNode
	flatNodes []*treeNode
	cursor    int
	loaded    bool
	pending   int
	spinner   spinner.Model
	statuses  map[string]bool

	// expandedKeys survives reloads so the tree keeps its shape
	expandedKeys map[string]bool
	selectedKey  string
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(source OutlineSource) *BrowserModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.MutedText
	return &BrowserModel{
		source:       source,
		spinner:      sp,
		statuses:     make(map[string]bool),
		expandedKeys: make(map[string]bool),
	}
}

type rootsLoadedMsg struct {
	nodes []domain.OutlineNode
	err   error
}

type childrenLoadedMsg struct {
	key   string
	nodes []domain.OutlineNode
	err   error
}

// OutlineChangedMsg asks the browser to rebuild after a registry change
type OutlineChangedMsg struct{}

// NotifyMsg carries a user notification into the view
type NotifyMsg struct {
	Text  string
	IsErr bool
}

// StatusMsg carries a requirement status into the view
type StatusMsg struct {
	Requirement string
	Available   bool
}

// OpenTutorialMsg asks the app to open a tutorial source in the editor
type OpenTutorialMsg struct {
	Node domain.OutlineNode
}

// ValidateTutorialMsg asks the app to run every requirement check of a tutorial
type ValidateTutorialMsg struct {
	Node domain.OutlineNode
}

// SwitchToRunLinkMsg asks the app to prompt for a link to run
type SwitchToRunLinkMsg struct{}

// SwitchToUnregisterMsg asks the app to confirm removing a tutorial
type SwitchToUnregisterMsg struct {
	Node domain.OutlineNode
}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// Init starts loading the root categories
func (m *BrowserModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload rebuilds the tree from the outline source, keeping expansion state
func (m *BrowserModel) Reload() tea.Cmd {
	if node := m.selectedNode(); node != nil {
		m.selectedKey = node.node.Key()
	}
	m.pending++
	return tea.Batch(m.spinner.Tick, m.loadRoots)
}

func (m *BrowserModel) loadRoots() tea.Msg {
	nodes, err := m.source.Children(context.Background(), nil)
	return rootsLoadedMsg{nodes: nodes, err: err}
}

func (m *BrowserModel) loadChildren(n *treeNode) tea.Cmd {
	m.pending++
	parent := n.node
	return func() tea.Msg {
		nodes, err := m.source.Children(context.Background(), &parent)
		return childrenLoadedMsg{key: parent.Key(), nodes: nodes, err: err}
	}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case rootsLoadedMsg:
		m.pending--
		if msg.err != nil {
			m.Fail(msg.err)
			return m, nil
		}
		m.loaded = true
		m.roots = m.buildNodes(nil, msg.nodes)
		return m, m.afterLoad(m.roots)

	case childrenLoadedMsg:
		m.pending--
		n := m.findByKey(msg.key)
		if n == nil {
			return m, nil
		}
		if msg.err != nil {
			n.expanded = false
			delete(m.expandedKeys, msg.key)
			m.Fail(msg.err)
			m.refreshFlatNodes()
			return m, nil
		}
		n.loaded = true
		n.children = m.buildNodes(n, msg.nodes)
		return m, m.afterLoad(n.children)

	case OutlineChangedMsg:
		return m, m.Reload()

	case NotifyMsg:
		m.SetMessage(msg.Text, msg.IsErr)
		return m, nil

	case StatusMsg:
		m.statuses[msg.Requirement] = msg.Available
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, BrowserKeys.Down):
		if m.cursor < len(m.flatNodes)-1 {
			m.cursor++
		}

	case key.Matches(msg, BrowserKeys.Left):
		n := m.selectedNode()
		if n == nil {
			return nil
		}
		if n.expanded {
			m.collapse(n)
		} else if n.parent != nil {
			m.moveTo(n.parent)
		}

	case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
		n := m.selectedNode()
		if n == nil || n.node.IsLeaf() {
			return nil
		}
		if !n.expanded {
			return m.expand(n)
		}
		if key.Matches(msg, BrowserKeys.Enter) {
			m.collapse(n)
		}

	case key.Matches(msg, BrowserKeys.Open):
		if n := m.selectedNode(); n != nil && n.node.SourceURI != "" {
			node := n.node
			return func() tea.Msg { return OpenTutorialMsg{Node: node} }
		}

	case key.Matches(msg, BrowserKeys.Copy):
		if n := m.selectedNode(); n != nil && n.node.SourceURI != "" {
			if err := clipboard.WriteAll(n.node.SourceURI); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied "+n.node.SourceURI, false)
			}
		}

	case key.Matches(msg, BrowserKeys.Validate):
		if n := m.selectedNode(); n != nil && n.node.SourceURI != "" {
			node := n.node
			return func() tea.Msg { return ValidateTutorialMsg{Node: node} }
		}

	case key.Matches(msg, BrowserKeys.New):
		category := ""
		if n := m.selectedNode(); n != nil {
			category = n.node.Category
		}
		return func() tea.Msg { return SwitchToRegisterMsg{Category: category} }

	case key.Matches(msg, BrowserKeys.Unregister):
		if n := m.selectedNode(); n != nil && n.node.Kind == domain.NodeTutorial {
			node := n.node
			return func() tea.Msg { return SwitchToUnregisterMsg{Node: node} }
		}

	case key.Matches(msg, BrowserKeys.RunLink):
		return func() tea.Msg { return SwitchToRunLinkMsg{} }

	case key.Matches(msg, BrowserKeys.Search):
		return func() tea.Msg { return SwitchToSearchMsg{} }

	case key.Matches(msg, BrowserKeys.Refresh):
		return m.Reload()

	case key.Matches(msg, BrowserKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}
	return nil
}

func (m *BrowserModel) expand(n *treeNode) tea.Cmd {
	n.expanded = true
	m.expandedKeys[n.node.Key()] = true
	if n.loaded {
		m.refreshFlatNodes()
		return nil
	}
	m.refreshFlatNodes()
	return tea.Batch(m.spinner.Tick, m.loadChildren(n))
}

func (m *BrowserModel) collapse(n *treeNode) {
	n.expanded = false
	delete(m.expandedKeys, n.node.Key())
	m.refreshFlatNodes()
}

// buildNodes wraps loaded outline nodes, restoring expansion by key
func (m *BrowserModel) buildNodes(parent *treeNode, nodes []domain.OutlineNode) []*treeNode {
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	result := make([]*treeNode, len(nodes))
	for i, node := range nodes {
		result[i] = &treeNode{
			node:     node,
			parent:   parent,
			depth:    depth,
			expanded: m.expandedKeys[node.Key()] && !node.IsLeaf(),
		}
	}
	return result
}

// afterLoad refreshes the view and reloads children of nodes that were
// expanded before the rebuild
func (m *BrowserModel) afterLoad(nodes []*treeNode) tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range nodes {
		if n.expanded {
			cmds = append(cmds, m.loadChildren(n))
		}
	}
	m.refreshFlatNodes()
	if m.selectedKey != "" {
		if n := m.findByKey(m.selectedKey); n != nil {
			m.moveTo(n)
		}
	}
	return tea.Batch(cmds...)
}

func (m *BrowserModel) findByKey(k string) *treeNode {
	var walk func(nodes []*treeNode) *treeNode
	walk = func(nodes []*treeNode) *treeNode {
		for _, n := range nodes {
			if n.node.Key() == k {
				return n
			}
			if found := walk(n.children); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(m.roots)
}

func (m *BrowserModel) moveTo(target *treeNode) {
	for i, n := range m.flatNodes {
		if n == target {
			m.cursor = i
			m.selectedKey = ""
			return
		}
	}
}

func (m *BrowserModel) selectedNode() *treeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

// Selected returns the outline node under the cursor
func (m *BrowserModel) Selected() (domain.OutlineNode, bool) {
	if n := m.selectedNode(); n != nil {
		return n.node, true
	}
	return domain.OutlineNode{}, false
}

func (m *BrowserModel) refreshFlatNodes() {
	m.flatNodes = m.flatNodes[:0]
	for _, r := range m.roots {
		m.flatNodes = r.flatten(m.flatNodes)
	}
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder().
		Title("Didact").
		Subtitle("Registered tutorials")

	if !m.loaded {
		if m.pending > 0 {
			return v.Line(m.spinner.View() + " Loading tutorials...").String()
		}
		return v.Message(m.Message, m.MessageErr).String()
	}

	if len(m.flatNodes) == 0 {
		v.Muted("No tutorials registered")
	}
	for i, n := range m.flatNodes {
		v.Line(RenderOutlineNode(n.node, n.depth, n.expanded, i == m.cursor))
	}
	if m.pending > 0 {
		v.Line(m.spinner.View() + " " + RenderMuted("Scanning headings..."))
	}

	if len(m.statuses) > 0 {
		v.BlankLine().
			Line(styles.InputLabel.Render("Requirements")).
			Lines(RenderRequirements(m.statuses)...)
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	return v.Help(BrowserKeys.ShortHelp()...).String()
}
