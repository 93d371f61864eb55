package views

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/domain"
)

type fakeOutline struct {
	mu       sync.Mutex
	roots    []domain.OutlineNode
	children map[string][]domain.OutlineNode
	failKey  string
	calls    int
}

func (f *fakeOutline) Children(ctx context.Context, parent *domain.OutlineNode) ([]domain.OutlineNode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if parent == nil {
		return f.roots, nil
	}
	if parent.Key() == f.failKey {
		return nil, errors.New("cannot fetch tutorial")
	}
	return f.children[parent.Key()], nil
}

func newFakeOutline() *fakeOutline {
	demo := domain.OutlineNode{Kind: domain.NodeTutorial, Category: "Didact", Label: "Demo",
		SourceURI: "file:///demo.md", EstimatedMinutes: 2, HasEstimate: true}
	other := domain.OutlineNode{Kind: domain.NodeTutorial, Category: "Didact", Label: "Other",
		SourceURI: "file:///other.md"}
	return &fakeOutline{
		roots: []domain.OutlineNode{domain.NewCategoryNode("Didact"), domain.NewCategoryNode("Empty")},
		children: map[string][]domain.OutlineNode{
			domain.NewCategoryNode("Didact").Key(): {demo, other},
			demo.Key(): {
				{Kind: domain.NodeHeading, Category: "Didact", Label: "Setup", SourceURI: "file:///demo.md",
					EstimatedMinutes: 5, HasEstimate: true},
				{Kind: domain.NodeHeading, Category: "Didact", Label: "Run", SourceURI: "file:///demo.md"},
			},
		},
	}
}

// loadedBrowser returns a browser with its roots already loaded
func loadedBrowser(t *testing.T, source *fakeOutline) *BrowserModel {
	t.Helper()
	m := NewBrowserModel(source)
	m.pending++
	m.Update(m.loadRoots())
	if !m.loaded {
		t.Fatalf("roots not loaded: %q", m.Message)
	}
	return m
}

// expandSelected expands the node under the cursor and delivers its children
func expandSelected(t *testing.T, m *BrowserModel) {
	t.Helper()
	n := m.selectedNode()
	if n == nil {
		t.Fatal("nothing selected")
	}
	m.expandedKeys[n.node.Key()] = true
	n.expanded = true
	m.Update(m.loadChildren(n)())
}

func labels(m *BrowserModel) []string {
	var out []string
	for _, n := range m.flatNodes {
		out = append(out, n.node.Label)
	}
	return out
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowser_LazyExpansion(t *testing.T) {
	source := newFakeOutline()
	m := loadedBrowser(t, source)

	if got := strings.Join(labels(m), ","); got != "Didact,Empty" {
		t.Fatalf("roots = %s", got)
	}
	if source.calls != 1 {
		t.Errorf("children fetched before expansion: %d calls", source.calls)
	}

	expandSelected(t, m)
	if got := strings.Join(labels(m), ","); got != "Didact,Demo,Other,Empty" {
		t.Errorf("after expanding category = %s", got)
	}

	m.Update(keyPress('j'))
	expandSelected(t, m)
	if got := strings.Join(labels(m), ","); got != "Didact,Demo,Setup,Run,Other,Empty" {
		t.Errorf("after expanding tutorial = %s", got)
	}
	if m.pending != 0 {
		t.Errorf("pending = %d", m.pending)
	}

	// h collapses the tutorial, a second h moves to its category
	m.Update(keyPress('h'))
	if got := strings.Join(labels(m), ","); got != "Didact,Demo,Other,Empty" {
		t.Errorf("after collapse = %s", got)
	}
	m.Update(keyPress('h'))
	if node, _ := m.Selected(); node.Label != "Didact" {
		t.Errorf("selected after h = %q", node.Label)
	}
}

func TestBrowser_ReloadKeepsExpansion(t *testing.T) {
	source := newFakeOutline()
	m := loadedBrowser(t, source)
	expandSelected(t, m)
	m.Update(keyPress('j'))

	_, cmd := m.Update(OutlineChangedMsg{})
	if cmd == nil {
		t.Fatal("expected reload command")
	}

	// deliver the reload and the re-expansion of Didact by hand
	_, cmd = m.Update(m.loadRoots())
	if cmd == nil {
		t.Fatal("expected children reload for the expanded category")
	}
	didact := m.findByKey(domain.NewCategoryNode("Didact").Key())
	m.Update(childrenLoadedMsg{key: didact.node.Key(), nodes: source.children[didact.node.Key()]})

	if got := strings.Join(labels(m), ","); got != "Didact,Demo,Other,Empty" {
		t.Errorf("after reload = %s", got)
	}
	if node, _ := m.Selected(); node.Label != "Demo" {
		t.Errorf("selection not restored: %q", node.Label)
	}
}

func TestBrowser_ChildrenErrorCollapses(t *testing.T) {
	source := newFakeOutline()
	m := loadedBrowser(t, source)
	expandSelected(t, m)
	m.Update(keyPress('j'))

	source.failKey = m.selectedNode().node.Key()
	expandSelected(t, m)

	if !m.MessageErr || !strings.Contains(m.Message, "cannot fetch") {
		t.Errorf("message = %q (err %v)", m.Message, m.MessageErr)
	}
	if m.selectedNode().expanded {
		t.Error("failed node should collapse")
	}
}

func TestBrowser_ActionMessages(t *testing.T) {
	m := loadedBrowser(t, newFakeOutline())
	expandSelected(t, m)

	// category: no open, no unregister
	if _, cmd := m.Update(keyPress('o')); cmd != nil {
		t.Error("open on a category should do nothing")
	}
	if _, cmd := m.Update(keyPress('x')); cmd != nil {
		t.Error("unregister on a category should do nothing")
	}

	m.Update(keyPress('j'))
	tests := []struct {
		key  rune
		want func(tea.Msg) bool
	}{
		{'o', func(msg tea.Msg) bool { v, ok := msg.(OpenTutorialMsg); return ok && v.Node.Label == "Demo" }},
		{'v', func(msg tea.Msg) bool { v, ok := msg.(ValidateTutorialMsg); return ok && v.Node.SourceURI == "file:///demo.md" }},
		{'x', func(msg tea.Msg) bool { v, ok := msg.(SwitchToUnregisterMsg); return ok && v.Node.Category == "Didact" }},
		{'n', func(msg tea.Msg) bool { v, ok := msg.(SwitchToRegisterMsg); return ok && v.Category == "Didact" }},
		{':', func(msg tea.Msg) bool { _, ok := msg.(SwitchToRunLinkMsg); return ok }},
		{'/', func(msg tea.Msg) bool { _, ok := msg.(SwitchToSearchMsg); return ok }},
		{'?', func(msg tea.Msg) bool { _, ok := msg.(SwitchToHelpMsg); return ok }},
	}
	for _, tt := range tests {
		_, cmd := m.Update(keyPress(tt.key))
		if cmd == nil {
			t.Errorf("%q: no command", tt.key)
			continue
		}
		if msg := cmd(); !tt.want(msg) {
			t.Errorf("%q: unexpected message %#v", tt.key, msg)
		}
	}
}

func TestBrowser_ViewShowsDurationsAndStatus(t *testing.T) {
	m := loadedBrowser(t, newFakeOutline())
	expandSelected(t, m)
	m.Update(keyPress('j'))
	expandSelected(t, m)
	m.Update(StatusMsg{Requirement: "maven", Available: false})
	m.Update(NotifyMsg{Text: "Didact just executed didact.echo"})

	view := m.View()
	for _, want := range []string{"Didact", "Demo", "~2 mins", "Setup", "(~5 mins)", "maven", "unavailable", "Didact just executed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPromptModel(t *testing.T) {
	m := NewPromptModel(PromptUserInput, "Input", "Name", "")
	for _, r := range "Ada" {
		m.Update(keyPress(r))
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	answer, ok := cmd().(PromptAnsweredMsg)
	if !ok || answer.Value != "Ada" || answer.Cancelled {
		t.Errorf("answer = %#v", answer)
	}

	m = NewPromptModel(PromptRunLink, "Run", "Link", "")
	m.Standalone = true
	m.Update(keyPress('x'))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Answer(); !got.Cancelled || got.Purpose != PromptRunLink {
		t.Errorf("standalone answer = %#v", got)
	}

	m = NewPromptModel(PromptUserInput, "Input", "Name", "")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if answer := cmd().(PromptAnsweredMsg); !answer.Cancelled {
		t.Error("empty answer should count as cancelled")
	}

	m = NewPromptModel(PromptRunLink, "Run", "Link", "")
	for _, r := range "https://example.com" {
		m.Update(keyPress(r))
	}
	if _, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("a non-didact link should not be submitted")
	}
	if !m.MessageErr || !strings.Contains(m.Message, "didact:") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	for i := 0; i < 4; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 4 || p.CurrentPage() != 2 {
		t.Errorf("cursor=%d page=%d", p.Cursor(), p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("range = %d..%d", start, end)
	}
	if !p.NextPage() || p.Cursor() != 6 || p.NextPage() {
		t.Errorf("next page: cursor=%d", p.Cursor())
	}
	if p.TotalPages() != 3 {
		t.Errorf("pages = %d", p.TotalPages())
	}
	if p.View() == "" {
		t.Error("expected page dots for several pages")
	}
	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("after shrink cursor=%d page=%d", p.Cursor(), p.CurrentPage())
	}
	if p.View() != "" {
		t.Error("a single page needs no dots")
	}
	p.Reset()
	if p.CursorDown() || p.TotalPages() != 1 {
		t.Errorf("after reset cursor moved or pages = %d", p.TotalPages())
	}
}

func TestHelpModel(t *testing.T) {
	m := NewHelpModel()
	view := m.View()
	for _, want := range []string{"run link", "check requirements", "projectFilePath", "close"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}
	_, cmd := m.Update(keyPress('?'))
	if cmd == nil {
		t.Fatal("? should close help")
	}
	if _, ok := cmd().(SwitchToBrowserMsg); !ok {
		t.Error("closing help should return to the browser")
	}
}
